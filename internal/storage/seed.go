package storage

import "github.com/aliskhannn/trivia-api/internal/domain/entities"

// DefaultCategories mirrors the categories seeded by the SQL migrations.
func DefaultCategories() []entities.Category {
	return []entities.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
				{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
		{ID: 14, Type: "Geography"},
	}
}

// DefaultQuestions mirrors the questions seeded by the SQL migrations.
func DefaultQuestions() []entities.Question {
	return []entities.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", CategoryID: 5, Difficulty: 3},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 14, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: 14, Difficulty: 3},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", CategoryID: 14, Difficulty: 2},
		{ID: 16, Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", CategoryID: 2, Difficulty: 4},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", CategoryID: 2, Difficulty: 2},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", CategoryID: 1, Difficulty: 4},
		{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", CategoryID: 4, Difficulty: 4},
	}
}
