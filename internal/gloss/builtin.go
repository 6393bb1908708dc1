package gloss

import (
	"sync"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// Builtin returns the glossary compiled into the binary. It is built once.
var Builtin = sync.OnceValue(func() *Glossary {
	return MustNew(builtinEntries)
})

// builtinEntries is ordered by priority: earlier entries win ties.
var builtinEntries = []domain.GlossaryEntry{
	{
		SurfaceForm:      "कल",
		SurfaceFormRoman: "kal",
		Meaning:          "बीता हुआ समय; गत दिवस; पिछला दिन या आने वाला दिन",
		MeaningEn:        "Yesterday or tomorrow; past or future time",
		Etymology:        "संस्कृत \"कल्य\" से व्युत्पन्न, जिसका अर्थ है \"समय\"",
		EtymologyEn:      "Derived from Sanskrit \"kalya\", meaning \"time\"",
		Example:          "कल रात को मच्छर ने काटा",
		ExampleEn:        "The mosquito bit me last night",
	},
	{
		SurfaceForm:      "रात",
		SurfaceFormRoman: "raat",
		Meaning:          "सूर्यास्त के बाद से सूर्योदय तक का समय",
		MeaningEn:        "The period from sunset to sunrise; night",
		Etymology:        "संस्कृत \"रात्रि\" से, जिसका अर्थ है \"रात\"",
		EtymologyEn:      "From Sanskrit \"ratri\", meaning \"night\"",
		Example:          "रात में तारे दिखते हैं",
		ExampleEn:        "Stars appear at night",
	},
	{
		SurfaceForm:      "मच्छर",
		SurfaceFormRoman: "machchar",
		Meaning:          "एक छोटा कीट जो रक्त चूसता है",
		MeaningEn:        "A small insect that sucks blood; mosquito",
		Etymology:        "हिंदी में उर्दू/फ़ारसी \"मश\" से, जिसका अर्थ है \"फुलाना\"",
		EtymologyEn:      "From Urdu/Persian \"mash\", related to \"to blow\" or \"to bite\"",
		Example:          "मच्छर के काटने से खुजली होती है",
		ExampleEn:        "Mosquito bites cause itching",
	},
	{
		SurfaceForm:      "काटने",
		SurfaceFormRoman: "kaatne",
		Meaning:          "दांतों या नुकीले अंग से चोट पहुंचाना",
		MeaningEn:        "To bite or sting; to cut with teeth or sharp instrument",
		Etymology:        "संस्कृत \"कर्त\" (काटना) से",
		EtymologyEn:      "From Sanskrit \"kart\" (to cut)",
		Example:          "मच्छर काटता है",
		ExampleEn:        "The mosquito bites",
	},
	{
		SurfaceForm:      "सच्चा",
		SurfaceFormRoman: "sachcha",
		Meaning:          "वास्तविक, सत्य, असली",
		MeaningEn:        "True, real, genuine, authentic",
		Etymology:        "संस्कृत \"सत्य\" से, जिसका अर्थ है \"सच\"",
		EtymologyEn:      "From Sanskrit \"satya\", meaning \"truth\"",
		Example:          "सच्चा दोस्त",
		ExampleEn:        "True friend",
	},
	{
		SurfaceForm:      "आशिक",
		SurfaceFormRoman: "ashiq",
		Meaning:          "प्रेमी, जो किसी से प्रेम करता है",
		MeaningEn:        "Lover, one who is in love",
		Etymology:        "अरबी/उर्दू \"आशिक़\" से, जिसका अर्थ है \"प्रेमी\"",
		EtymologyEn:      "From Arabic/Urdu \"ashiq\", meaning \"lover\"",
		Example:          "वह उसकी आशिक है",
		ExampleEn:        "He is her lover",
	},
	{
		SurfaceForm:      "आगयी",
		SurfaceFormRoman: "aagayi",
		Meaning:          "आ गई (स्त्रीलिंग), वापस आना या प्रकट होना",
		MeaningEn:        "Came back (feminine), to return or appear",
		Etymology:        "हिंदी \"आना\" (to come) का भूतकाल रूप",
		EtymologyEn:      "Past tense form of Hindi \"aana\" (to come)",
		Example:          "याद आ गई",
		ExampleEn:        "Memory came back",
	},
	{
		SurfaceForm:      "याद",
		SurfaceFormRoman: "yaad",
		Meaning:          "स्मृति, वह जो मन में रहता है",
		MeaningEn:        "Memory, remembrance; something remembered",
		Etymology:        "अरबी/फ़ारसी \"याद\" से, जिसका अर्थ है \"स्मरण\"",
		EtymologyEn:      "From Arabic/Persian \"yaad\", meaning \"remembrance\"",
		Example:          "तुम्हारी याद आती है",
		ExampleEn:        "I remember you",
	},
	{
		SurfaceForm:      "माथे",
		SurfaceFormRoman: "mathe",
		Meaning:          "सिर का ऊपरी हिस्सा, ललाट",
		MeaningEn:        "Forehead, the upper part of the head",
		Etymology:        "संस्कृत \"मस्तक\" से",
		EtymologyEn:      "From Sanskrit \"mastak\"",
		Example:          "माथे पर बिंदी",
		ExampleEn:        "Bindi on forehead",
	},
	{
		SurfaceForm:      "बिंदी",
		SurfaceFormRoman: "bindi",
		Meaning:          "माथे पर लगाया जाने वाला सजावटी बिन्दु",
		MeaningEn:        "Decorative dot worn on the forehead",
		Etymology:        "संस्कृत \"बिन्दु\" से, जिसका अर्थ है \"बिंदी\"",
		EtymologyEn:      "From Sanskrit \"bindu\", meaning \"dot\"",
		Example:          "सुंदर बिंदी",
		ExampleEn:        "Beautiful bindi",
	},
	{
		SurfaceForm:      "गालों",
		SurfaceFormRoman: "gaalon",
		Meaning:          "चेहरे के दोनों ओर की गाल हड्डी",
		MeaningEn:        "Cheeks, the sides of the face",
		Etymology:        "संस्कृत \"गाल\" से",
		EtymologyEn:      "From Sanskrit \"gala\"",
		Example:          "गुलाबी गाल",
		ExampleEn:        "Rosy cheeks",
	},
	{
		SurfaceForm:      "तिल",
		SurfaceFormRoman: "til",
		Meaning:          "शरीर पर छोटा काला निशान या तिल का बीज",
		MeaningEn:        "Mole on the body, or sesame seed",
		Etymology:        "संस्कृत \"तिल\" से",
		EtymologyEn:      "From Sanskrit \"til\"",
		Example:          "गाल पर तिल",
		ExampleEn:        "Mole on cheek",
	},
	{
		SurfaceForm:      "होंठों",
		SurfaceFormRoman: "honthhon",
		Meaning:          "मुंह का ऊपरी और निचला भाग",
		MeaningEn:        "Lips, the upper and lower part of the mouth",
		Etymology:        "संस्कृत \"ओष्ठ\" से",
		EtymologyEn:      "From Sanskrit \"oshtha\"",
		Example:          "लाल होंठ",
		ExampleEn:        "Red lips",
	},
	{
		SurfaceForm:      "लाल",
		SurfaceFormRoman: "laal",
		Meaning:          "लाल रंग, गुलाबी या क्रिमसन",
		MeaningEn:        "Red color, crimson or pink",
		Etymology:        "संस्कृत \"रक्त\" से",
		EtymologyEn:      "From Sanskrit \"rakta\"",
		Example:          "लाल गुलाब",
		ExampleEn:        "Red rose",
	},
	{
		SurfaceForm:      "रंग",
		SurfaceFormRoman: "rang",
		Meaning:          "रंग, वर्ण, पेंट",
		MeaningEn:        "Color, hue, paint",
		Etymology:        "संस्कृत \"रञ्ज\" से, जिसका अर्थ है \"रंगना\"",
		EtymologyEn:      "From Sanskrit \"ranj\", meaning \"to color\"",
		Example:          "सुंदर रंग",
		ExampleEn:        "Beautiful color",
	},
	{
		SurfaceForm:      "छूने",
		SurfaceFormRoman: "chhoone",
		Meaning:          "स्पर्श करना, हाथ लगाना",
		MeaningEn:        "To touch, to feel with hand",
		Etymology:        "संस्कृत \"स्पृश\" से",
		EtymologyEn:      "From Sanskrit \"sprish\"",
		Example:          "मुझे छुओ मत",
		ExampleEn:        "Don't touch me",
	},
	{
		SurfaceForm:      "लालच",
		SurfaceFormRoman: "lalach",
		Meaning:          "लोभ, लालसा, अत्यधिक इच्छा",
		MeaningEn:        "Greed, desire, excessive want",
		Etymology:        "संस्कृत \"लालसा\" से",
		EtymologyEn:      "From Sanskrit \"lalasa\"",
		Example:          "लालच बुरी बला है",
		ExampleEn:        "Greed is a bad thing",
	},
	{
		SurfaceForm:      "हाथों",
		SurfaceFormRoman: "haathon",
		Meaning:          "हाथों से (बहुवचन), हाथ द्वारा",
		MeaningEn:        "By hands (plural), with hands",
		Etymology:        "संस्कृत \"हस्त\" से",
		EtymologyEn:      "From Sanskrit \"hasta\"",
		Example:          "हाथों से बनाया",
		ExampleEn:        "Made by hand",
	},
	{
		SurfaceForm:      "मारा",
		SurfaceFormRoman: "mara",
		Meaning:          "मारा गया, हत्या की या मारा हुआ",
		MeaningEn:        "Killed, struck, or hit",
		Etymology:        "संस्कृत \"मृ\" (मरना) से",
		EtymologyEn:      "From Sanskrit \"mri\" (to die)",
		Example:          "मच्छर मारा गया",
		ExampleEn:        "The mosquito was killed",
	},
}
