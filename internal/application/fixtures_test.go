package application

import "voiceskill/internal/domain"

var esES = domain.StringTable{
	domain.SkillName:        "Hello world",
	domain.WelcomeMessage:   "Bienvenido, puedes decir Hola o Ayuda. Cual prefieres?",
	domain.HelloMessage:     "Hola Mundo!",
	domain.HelpMessage:      "Puedes decirme hola. Cómo te puedo ayudar?",
	domain.GoodbyeMessage:   "Hasta luego!",
	domain.ReflectorMessage: "Acabas de activar {{intentName}}",
	domain.FallbackMessage:  "Lo siento, no se nada sobre eso. Por favor inténtalo otra vez.",
	domain.ErrorMessage:     "Lo siento, ha habido un error. Por favor inténtalo otra vez.",
}

var enUS = domain.StringTable{
	domain.SkillName:        "Hello world",
	domain.WelcomeMessage:   "Welcome, you can say Hello or Help.",
	domain.HelloMessage:     "Hello World!",
	domain.HelpMessage:      "You can say hello to me!",
	domain.GoodbyeMessage:   "Goodbye!",
	domain.ReflectorMessage: "You just triggered {{intentName}}",
	domain.FallbackMessage:  "Sorry, I don't know about that.",
	domain.ErrorMessage:     "Sorry, I had trouble doing what you asked.",
}

type staticCatalog domain.LocaleTable

func (c staticCatalog) Locales() domain.LocaleTable { return domain.LocaleTable(c) }

func testCatalog() staticCatalog {
	return staticCatalog{"es-ES": esES, "en-US": enUS}
}

func testInput(req domain.Request) *Input {
	l, err := domain.NewLocalizer(req.Locale, domain.LocaleTable(testCatalog()))
	if err != nil {
		panic(err)
	}
	return &Input{Request: req, Localizer: l}
}
