package telegram

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/service"
	"github.com/aliskhannn/trivia-api/internal/storage"
)

const testChatID int64 = 42

type fakeBot struct {
	updates  chan tgbotapi.Update
	sent     []tgbotapi.MessageConfig
	requests int
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests++
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) last() tgbotapi.MessageConfig {
	return b.sent[len(b.sent)-1]
}

func (b *fakeBot) texts() []string {
	out := make([]string, 0, len(b.sent))
	for _, m := range b.sent {
		out = append(out, m.Text)
	}
	return out
}

func newTestHandler(t *testing.T) (*Handler, *fakeBot, *storage.RoundStorage) {
	t.Helper()

	store := storage.NewSeededMemoryStore()
	logger := zap.NewNop()
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	rounds := storage.NewRoundStorage()

	h := NewHandler(
		bot,
		logger,
		service.NewCategoryService(store, nil, logger),
		service.NewQuizService(store.Questions(), store),
		service.NewAnswerValidator(),
		rounds,
	)
	return h, bot, rounds
}

func message(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: 7},
	}
	if strings.HasPrefix(text, "/") {
		cmd, _, _ := strings.Cut(text, " ")
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return tgbotapi.Update{Message: msg}
}

func callback(data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: testChatID}},
		Data:    data,
	}}
}

func TestHandler_Commands(t *testing.T) {
	h, bot, _ := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, message("/start"))
	assert.Equal(t, msgWelcome, bot.last().Text)
	assert.Equal(t, tgbotapi.ModeHTML, bot.last().ParseMode)

	h.handleUpdate(ctx, message("/help"))
	assert.Equal(t, msgHelp, bot.last().Text)

	h.handleUpdate(ctx, message("/dance"))
	assert.Equal(t, msgUnknownCommand, bot.last().Text)

	h.handleUpdate(ctx, message("/categories"))
	assert.Contains(t, bot.last().Text, "14. Geography")
	kb, ok := bot.last().ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	assert.Len(t, kb.InlineKeyboard, 4)

	h.handleUpdate(ctx, message("/stop"))
	assert.Equal(t, msgNoActiveRound, bot.last().Text)

	h.handleUpdate(ctx, message("Agra"))
	assert.Equal(t, msgNoActiveRound, bot.last().Text)
}

func TestHandler_PlayRound(t *testing.T) {
	h, bot, rounds := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, message("/play 14"))

	round, ok := rounds.Get(testChatID)
	require.True(t, ok)
	require.NotNil(t, round.Current)
	assert.Equal(t, 14, round.Current.CategoryID)
	assert.Equal(t, "Geography", round.Category.Type)

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		round, ok := rounds.Get(testChatID)
		require.True(t, ok)
		require.NotNil(t, round.Current)
		assert.False(t, seen[round.Current.ID], "question %d asked twice", round.Current.ID)
		seen[round.Current.ID] = true

		answer := round.Current.Answer
		if i == 1 {
			answer = "definitely wrong"
		}
		h.handleUpdate(ctx, message(strings.ToUpper(answer)))
	}

	_, ok = rounds.Get(testChatID)
	assert.False(t, ok)
	assert.Contains(t, bot.last().Text, "2 of 3")

	texts := bot.texts()
	assert.Contains(t, texts, msgCorrect)
}

func TestHandler_PlayErrors(t *testing.T) {
	h, bot, rounds := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, message("/play abc"))
	assert.Equal(t, msgInvalidCategory, bot.last().Text)

	h.handleUpdate(ctx, message("/play 99"))
	assert.Equal(t, msgUnknownCategory, bot.last().Text)

	_, ok := rounds.Get(testChatID)
	assert.False(t, ok)

	h.handleUpdate(ctx, message("/play"))
	_, ok = bot.last().ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)
}

func TestHandler_StopReportsScore(t *testing.T) {
	h, bot, rounds := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, message("/play 0"))
	round, ok := rounds.Get(testChatID)
	require.True(t, ok)
	assert.True(t, round.Category.IsAll())

	h.handleUpdate(ctx, message(round.Current.Answer))
	h.handleUpdate(ctx, message("/stop"))

	assert.Contains(t, bot.last().Text, "1 of 1")
	_, ok = rounds.Get(testChatID)
	assert.False(t, ok)
}

func TestHandler_Callbacks(t *testing.T) {
	h, bot, rounds := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, callback(buildPlayCallback(1)))
	round, ok := rounds.Get(testChatID)
	require.True(t, ok)
	require.NotNil(t, round.Current)
	first := round.Current.ID

	h.handleUpdate(ctx, callback(buildSkipCallback(first)))
	round, ok = rounds.Get(testChatID)
	require.True(t, ok)
	require.NotNil(t, round.Current)
	assert.NotEqual(t, first, round.Current.ID)
	assert.Equal(t, 1, round.Answered())

	// stale skip button
	sent := len(bot.sent)
	h.handleUpdate(ctx, callback(buildSkipCallback(first)))
	assert.Len(t, bot.sent, sent)

	h.handleUpdate(ctx, callback("play:x"))
	h.handleUpdate(ctx, callback("unknown"))
	assert.Equal(t, 5, bot.requests)
}

func TestHandler_Run(t *testing.T) {
	h, bot, _ := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	bot.updates <- message("/start")
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, msgWelcome, bot.sent[0].Text)
}

func TestCallbackData(t *testing.T) {
	cd := decodeCallback(buildPlayCallback(4))
	assert.Equal(t, actionPlay, cd.Action)
	n, ok := cd.intParam(0)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = cd.intParam(1)
	assert.False(t, ok)

	cd = decodeCallback("skip")
	assert.Equal(t, actionSkip, cd.Action)
	assert.Empty(t, cd.Params)
}
