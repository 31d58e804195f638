package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPlay = "play"
	actionSkip = "skip"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// buildPlayCallback builds callback data for starting a round in a category.
func buildPlayCallback(categoryID int) string {
	return callbackData{
		Action: actionPlay,
		Params: []string{strconv.Itoa(categoryID)},
	}.encode()
}

// buildSkipCallback builds callback data for skipping the question with the given ID.
func buildSkipCallback(questionID int) string {
	return callbackData{
		Action: actionSkip,
		Params: []string{strconv.Itoa(questionID)},
	}.encode()
}
