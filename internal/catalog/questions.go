package catalog

import "studyquest/internal/models"

// questionBank is the static quiz question bank, keyed implicitly by the
// SubjectID of each question. Every subject has at least five questions so a
// full quiz round can always be drawn.
var questionBank = []models.Question{
	// Matemática
	{ID: "m1", SubjectID: "matematica", Question: "Quanto é 15 + 27?", Options: []string{"40", "42", "43", "45"}, CorrectAnswer: 1},
	{ID: "m2", SubjectID: "matematica", Question: "Qual é a raiz quadrada de 64?", Options: []string{"6", "7", "8", "9"}, CorrectAnswer: 2},
	{ID: "m3", SubjectID: "matematica", Question: "Quanto é 12 × 8?", Options: []string{"84", "92", "96", "104"}, CorrectAnswer: 2},
	{ID: "m4", SubjectID: "matematica", Question: "Quanto é 7 × 6?", Options: []string{"36", "40", "42", "48"}, CorrectAnswer: 2},
	{ID: "m5", SubjectID: "matematica", Question: "Quanto é 100 ÷ 4?", Options: []string{"20", "24", "25", "40"}, CorrectAnswer: 2},
	{ID: "m6", SubjectID: "matematica", Question: "Quanto é 3² + 4²?", Options: []string{"25", "24", "12", "49"}, CorrectAnswer: 0},

	// Português
	{ID: "p1", SubjectID: "portugues", Question: "Qual é o plural de \"cidadão\"?", Options: []string{"cidadões", "cidadãos", "cidadães", "cidadans"}, CorrectAnswer: 1},
	{ID: "p2", SubjectID: "portugues", Question: "Qual palavra está correta?", Options: []string{"excessão", "exceção", "exeção", "essceção"}, CorrectAnswer: 1},
	{ID: "p3", SubjectID: "portugues", Question: "O que é um substantivo?", Options: []string{"Ação", "Qualidade", "Nome", "Lugar"}, CorrectAnswer: 2},
	{ID: "p4", SubjectID: "portugues", Question: "Qual é o antônimo de \"claro\"?", Options: []string{"limpo", "escuro", "brilhante", "aberto"}, CorrectAnswer: 1},
	{ID: "p5", SubjectID: "portugues", Question: "O que é um verbo?", Options: []string{"Qualidade", "Nome", "Ação", "Lugar"}, CorrectAnswer: 2},

	// Ciências
	{ID: "c1", SubjectID: "ciencias", Question: "Qual é o planeta mais próximo do Sol?", Options: []string{"Vênus", "Terra", "Mercúrio", "Marte"}, CorrectAnswer: 2},
	{ID: "c2", SubjectID: "ciencias", Question: "Quantos ossos tem o corpo humano adulto?", Options: []string{"186", "206", "226", "246"}, CorrectAnswer: 1},
	{ID: "c3", SubjectID: "ciencias", Question: "O que é fotossíntese?", Options: []string{"Respiração das plantas", "Produção de alimento pelas plantas", "Crescimento das plantas", "Reprodução das plantas"}, CorrectAnswer: 1},
	{ID: "c4", SubjectID: "ciencias", Question: "Qual é a fórmula química da água?", Options: []string{"CO2", "H2O", "O2", "NaCl"}, CorrectAnswer: 1},
	{ID: "c5", SubjectID: "ciencias", Question: "Qual órgão bombeia o sangue pelo corpo?", Options: []string{"Pulmão", "Fígado", "Coração", "Cérebro"}, CorrectAnswer: 2},

	// História
	{ID: "h1", SubjectID: "historia", Question: "Em que ano foi descoberto o Brasil?", Options: []string{"1492", "1500", "1502", "1510"}, CorrectAnswer: 1},
	{ID: "h2", SubjectID: "historia", Question: "Quem foi o primeiro presidente do Brasil?", Options: []string{"Dom Pedro I", "Getúlio Vargas", "Deodoro da Fonseca", "Juscelino Kubitschek"}, CorrectAnswer: 2},
	{ID: "h3", SubjectID: "historia", Question: "Qual foi a capital do Brasil antes de Brasília?", Options: []string{"São Paulo", "Salvador", "Rio de Janeiro", "Recife"}, CorrectAnswer: 2},
	{ID: "h4", SubjectID: "historia", Question: "Em que ano foi proclamada a Independência do Brasil?", Options: []string{"1808", "1820", "1822", "1889"}, CorrectAnswer: 2},
	{ID: "h5", SubjectID: "historia", Question: "Quem assinou a Lei Áurea?", Options: []string{"Princesa Isabel", "Dom Pedro II", "Getúlio Vargas", "Tiradentes"}, CorrectAnswer: 0},

	// Geografia
	{ID: "g1", SubjectID: "geografia", Question: "Qual é o maior país do mundo em área?", Options: []string{"Canadá", "China", "Estados Unidos", "Rússia"}, CorrectAnswer: 3},
	{ID: "g2", SubjectID: "geografia", Question: "Qual é o rio mais extenso do mundo?", Options: []string{"Nilo", "Amazonas", "Yangtzé", "Mississippi"}, CorrectAnswer: 1},
	{ID: "g3", SubjectID: "geografia", Question: "Quantos continentes existem?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: 2},
	{ID: "g4", SubjectID: "geografia", Question: "Qual é a capital da Austrália?", Options: []string{"Sydney", "Melbourne", "Canberra", "Perth"}, CorrectAnswer: 2},
	{ID: "g5", SubjectID: "geografia", Question: "Qual é o maior deserto quente do mundo?", Options: []string{"Atacama", "Saara", "Gobi", "Kalahari"}, CorrectAnswer: 1},

	// Inglês
	{ID: "i1", SubjectID: "ingles", Question: "Como se diz \"obrigado\" em inglês?", Options: []string{"Please", "Sorry", "Thank you", "Welcome"}, CorrectAnswer: 2},
	{ID: "i2", SubjectID: "ingles", Question: "Qual é o plural de \"child\"?", Options: []string{"childs", "childes", "children", "childer"}, CorrectAnswer: 2},
	{ID: "i3", SubjectID: "ingles", Question: "O que significa \"book\"?", Options: []string{"Livro", "Caderno", "Lápis", "Mesa"}, CorrectAnswer: 0},
	{ID: "i4", SubjectID: "ingles", Question: "Como se diz \"maçã\" em inglês?", Options: []string{"Orange", "Apple", "Grape", "Pear"}, CorrectAnswer: 1},
	{ID: "i5", SubjectID: "ingles", Question: "Qual é o passado de \"go\"?", Options: []string{"goed", "gone", "went", "going"}, CorrectAnswer: 2},
}

// QuestionsForSubject returns all bank questions for one subject.
func QuestionsForSubject(subjectID string) []models.Question {
	var questions []models.Question
	for _, q := range questionBank {
		if q.SubjectID == subjectID {
			questions = append(questions, q)
		}
	}
	return questions
}
