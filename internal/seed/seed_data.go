package seed

import (
	appModels "github.com/learnsmart/learnsmart/internal/app/models"
)

// placementBank is the fixed ten-question placement test: three beginner,
// three intermediate and four advanced questions. Slice order is the
// position shown to the student.
var placementBank = []appModels.PlacementQuestion{
	{
		Prompt:        `How do you say "Hello, how are you?" in Spanish?`,
		Options:       []string{"Hola, ¿cómo estás?", "Adiós, gracias", "Buenos días, por favor", "Mucho gusto"},
		CorrectOption: 0,
		Level:         appModels.LevelBeginner,
	},
	{
		Prompt:        "Choose the correct form: Yo ___ estudiante.",
		Options:       []string{"soy", "eres", "es", "son"},
		CorrectOption: 0,
		Level:         appModels.LevelBeginner,
	},
	{
		Prompt:        `What is "the book" in Spanish?`,
		Options:       []string{"la libro", "el libro", "los libro", "las libro"},
		CorrectOption: 1,
		Level:         appModels.LevelBeginner,
	},
	{
		Prompt:        "Complete: Ayer yo ___ al cine. (I went to the cinema yesterday)",
		Options:       []string{"voy", "fui", "iré", "vaya"},
		CorrectOption: 1,
		Level:         appModels.LevelIntermediate,
	},
	{
		Prompt:        "Which sentence is correct?",
		Options:       []string{"Ella es más alta que yo", "Ella es más alto que yo", "Ella es mas alta de yo", "Ella es alto más que yo"},
		CorrectOption: 0,
		Level:         appModels.LevelIntermediate,
	},
	{
		Prompt:        "Complete: Cuando era niño, ___ en el parque. (When I was a child, I used to play in the park)",
		Options:       []string{"juego", "jugué", "jugaba", "jugaré"},
		CorrectOption: 2,
		Level:         appModels.LevelIntermediate,
	},
	{
		Prompt:        "Choose the correct subjunctive: Es importante que tú ___ bien.",
		Options:       []string{"comes", "comas", "comerás", "comiste"},
		CorrectOption: 1,
		Level:         appModels.LevelAdvanced,
	},
	{
		Prompt:        `What's the difference between "por" and "para" in: Trabajo ___ mi familia?`,
		Options:       []string{"por (for the sake of)", "para (in order to)", "Both work", "Neither works"},
		CorrectOption: 0,
		Level:         appModels.LevelAdvanced,
	},
	{
		Prompt:        "Complete with past subjunctive: Si yo ___ rico, viajaría mucho.",
		Options:       []string{"soy", "era", "fuera", "seré"},
		CorrectOption: 2,
		Level:         appModels.LevelAdvanced,
	},
	{
		Prompt:        `What does this idiom mean: "No tener pelos en la lengua"?`,
		Options:       []string{"To not have hair on your tongue", "To speak directly/bluntly", "To be very quiet", "To be hairy"},
		CorrectOption: 1,
		Level:         appModels.LevelAdvanced,
	},
}

type lessonSeed struct {
	Title     string
	Level     appModels.Level
	Questions []appModels.Question
}

// mcq builds a five-point multiple-choice question. correct is an index
// into options.
func mcq(prompt string, correct int, options ...string) appModels.Question {
	return appModels.Question{
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: options[correct],
		Points:        5,
	}
}

// defaultLessons is the starter catalog: ten lessons per level.
var defaultLessons = []lessonSeed{
	// Beginner
	{
		Title: "Greetings and Introductions", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`How do you say "Good morning" in Spanish?`, 2, "Buenas noches", "Hasta luego", "Buenos días", "Por favor"),
			mcq(`Which phrase means "My name is Ana"?`, 0, "Me llamo Ana", "Tengo Ana", "Estoy Ana", "Soy de Ana"),
		},
	},
	{
		Title: "The Alphabet and Pronunciation", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`How is the letter "ñ" pronounced?`, 1, "Like 'n' in no", "Like 'ny' in canyon", "Like 'm' in map", "It is silent"),
			mcq(`In Spanish, the letter "h" is usually:`, 3, "Pronounced like 'j'", "Pronounced like 'g'", "Pronounced like English 'h'", "Silent"),
		},
	},
	{
		Title: "Numbers, Days, and Months", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`What is "fifteen" in Spanish?`, 2, "cinco", "cincuenta", "quince", "catorce"),
			mcq(`Which day is "miércoles"?`, 1, "Monday", "Wednesday", "Thursday", "Saturday"),
		},
	},
	{
		Title: "Basic Sentence Structure", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq("Choose the correct word order:", 0, "Yo como pan", "Como yo pan", "Pan yo como", "Yo pan como"),
			mcq(`How do you negate "Hablo español"?`, 2, "Hablo no español", "Hablo español no", "No hablo español", "Ni hablo español"),
		},
	},
	{
		Title: "Common Verbs (Ser, Estar, Tener)", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq("Complete: Ella ___ cansada hoy.", 1, "es", "está", "tiene", "son"),
			mcq("Complete: Nosotros ___ dos hermanos.", 3, "somos", "estamos", "tienen", "tenemos"),
		},
	},
	{
		Title: "Nouns and Gender", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`Which article goes with "mesa"?`, 2, "el", "los", "la", "un"),
			mcq(`What is the plural of "el lápiz"?`, 0, "los lápices", "los lápizs", "las lápices", "el lápices"),
		},
	},
	{
		Title: "Adjectives and Agreement", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq("Choose the correct agreement: Las casas ___", 3, "blanco", "blancos", "blanca", "blancas"),
			mcq("In Spanish, descriptive adjectives usually go:", 1, "Before the noun", "After the noun", "At the start of the sentence", "Anywhere"),
		},
	},
	{
		Title: "Asking Questions", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`Which word means "where"?`, 1, "cuándo", "dónde", "quién", "por qué"),
			mcq(`How do you ask "How much does it cost?"`, 0, "¿Cuánto cuesta?", "¿Cómo cuesta?", "¿Qué cuesta a?", "¿Cuál costar?"),
		},
	},
	{
		Title: "Family and Relationships", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`What is "grandmother" in Spanish?`, 2, "abuelo", "tía", "abuela", "prima"),
			mcq(`"Mi hermano mayor" means:`, 0, "My older brother", "My younger brother", "My big house", "My best friend"),
		},
	},
	{
		Title: "Food and Drinks", Level: appModels.LevelBeginner,
		Questions: []appModels.Question{
			mcq(`What is "manzana"?`, 3, "Orange", "Bread", "Cheese", "Apple"),
			mcq("How do you order water politely?", 1, "Agua ahora", "Un agua, por favor", "Dame agua ya", "Agua yo quiero"),
		},
	},
	// Intermediate
	{
		Title: "Present Tense Regular Verbs", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Conjugate: Ellos ___ (vivir) en Madrid.", 0, "viven", "vive", "vivo", "vivís"),
			mcq("Conjugate: Tú ___ (comer) mucho.", 2, "come", "como", "comes", "comen"),
		},
	},
	{
		Title: "Present Tense Irregular Verbs", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Conjugate: Yo ___ (hacer) la tarea.", 1, "haco", "hago", "hace", "hazo"),
			mcq("Conjugate: Ella ___ (poder) venir mañana.", 3, "pode", "puedo", "poden", "puede"),
		},
	},
	{
		Title: "Preterite Tense", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: Ayer ellos ___ (llegar) tarde.", 2, "llegan", "llegaban", "llegaron", "llegarán"),
			mcq("Complete: Yo ___ (tener) un problema anoche.", 0, "tuve", "tenía", "tengo", "tendré"),
		},
	},
	{
		Title: "Imperfect Tense", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: De niña, ella ___ (cantar) todos los días.", 1, "cantó", "cantaba", "canta", "cantará"),
			mcq("The imperfect tense is used for:", 3, "Completed single events", "Future plans", "Commands", "Habitual past actions"),
		},
	},
	{
		Title: "Direct and Indirect Object Pronouns", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Replace the object: Veo a María →", 2, "Lo veo", "Le veo", "La veo", "Me veo"),
			mcq("Complete: ___ di el libro a Juan.", 0, "Le", "Lo", "La", "Se"),
		},
	},
	{
		Title: "Reflexive Verbs", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: Yo ___ levanto a las siete.", 1, "te", "me", "se", "nos"),
			mcq(`"Ducharse" means:`, 0, "To shower oneself", "To sleep", "To dress someone", "To wake up late"),
		},
	},
	{
		Title: "Gustar and Similar Verbs", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: A mí ___ gustan los tacos.", 3, "yo", "mi", "le", "me"),
			mcq("Choose the correct sentence:", 1, "Nos gustamos la música", "Nos gusta la música", "Nosotros gusta la música", "Nos gustan la música"),
		},
	},
	{
		Title: "Por vs. Para", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: Este regalo es ___ ti.", 0, "para", "por", "de", "a"),
			mcq("Complete: Caminamos ___ el parque.", 2, "para", "en", "por", "sobre"),
		},
	},
	{
		Title: "Making Comparisons", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq("Complete: Juan es ___ alto ___ Pedro.", 1, "más / de", "más / que", "tan / que", "muy / como"),
			mcq(`What is the irregular comparative of "bueno"?`, 3, "más bueno", "buenísimo", "bien", "mejor"),
		},
	},
	{
		Title: "Travel and Directions", Level: appModels.LevelIntermediate,
		Questions: []appModels.Question{
			mcq(`"Siga todo recto" means:`, 2, "Turn left", "Turn right", "Go straight ahead", "Stop here"),
			mcq("How do you ask for the train station?", 0, "¿Dónde está la estación de tren?", "¿Qué es la estación de tren?", "¿Cuándo está la estación?", "¿Quién es el tren?"),
		},
	},
	// Advanced
	{
		Title: "Subjunctive Mood: Present", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Complete: Espero que tú ___ (venir) a la fiesta.", 1, "vienes", "vengas", "vendrás", "viniste"),
			mcq("Complete: Dudo que ellos ___ (saber) la respuesta.", 3, "saben", "sabrán", "supieron", "sepan"),
		},
	},
	{
		Title: "Subjunctive Mood: Imperfect", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Complete: Quería que nosotros ___ (estudiar) más.", 2, "estudiamos", "estudiaremos", "estudiáramos", "estudiemos"),
			mcq("Complete: Si ella ___ (tener) tiempo, vendría.", 0, "tuviera", "tiene", "tenga", "tendría"),
		},
	},
	{
		Title: "The Conditional Tense", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Complete: Yo ___ (viajar) más si pudiera.", 1, "viajaré", "viajaría", "viajaba", "viaje"),
			mcq(`What is the conditional of "decir" for "yo"?`, 0, "diría", "deciría", "dije", "diga"),
		},
	},
	{
		Title: "The Future Tense", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Complete: Mañana nosotros ___ (salir) temprano.", 2, "salimos", "saldríamos", "saldremos", "salgamos"),
			mcq(`What is the future of "haber" for "ellos"?`, 0, "habrán", "haberán", "habían", "hayan"),
		},
	},
	{
		Title: "Passive Voice", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Choose the passive form: El libro ___ por Cervantes.", 3, "escribió", "fue escribiendo", "estaba escrito de", "fue escrito"),
			mcq(`The "se" passive in "Se venden casas" means:`, 1, "He sells houses", "Houses are sold", "They sell themselves", "Sell the houses"),
		},
	},
	{
		Title: "Reported Speech", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq(`Report: "Estoy cansado" → Dijo que ___ cansado.`, 2, "está", "estará", "estaba", "estuvo"),
			mcq(`Report: "Vendré mañana" → Dijo que ___ al día siguiente.`, 0, "vendría", "vendrá", "venía", "viniera"),
		},
	},
	{
		Title: "Advanced Conjunctions", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Complete: Te llamaré en cuanto ___ (llegar).", 1, "llego", "llegue", "llegaré", "llegaba"),
			mcq(`"A menos que" requires which mood?`, 0, "Subjunctive", "Indicative", "Conditional", "Imperative"),
		},
	},
	{
		Title: "Idiomatic Expressions", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq(`"Estar en las nubes" means:`, 3, "To be flying", "To be very tall", "To be cold", "To be daydreaming"),
			mcq(`"Costar un ojo de la cara" means:`, 0, "To be very expensive", "To hurt your eye", "To look closely", "To cry a lot"),
		},
	},
	{
		Title: "Formal vs. Informal Speech", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq("Which pronoun is formal singular?", 2, "tú", "vosotros", "usted", "vos"),
			mcq("Choose the formal request:", 0, "¿Podría ayudarme, por favor?", "Ayúdame ya", "Oye, ayuda", "¿Me ayudas o qué?"),
		},
	},
	{
		Title: "Spanish in the Workplace", Level: appModels.LevelAdvanced,
		Questions: []appModels.Question{
			mcq(`What is "la reunión"?`, 1, "The salary", "The meeting", "The office", "The contract"),
			mcq("How do you say you will send the report?", 0, "Enviaré el informe", "Envío informando", "Informaré el envío", "El informe envía"),
		},
	},
}
