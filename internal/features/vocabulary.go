package features

// Phrase maps a lowercase phrase found in a description to an attribute value.
type Phrase[T ~string] struct {
	Text  string
	Value T
}

// Phrase tables are scanned in slice order. When several phrases of one
// table match the same keyword the last one wins, so more specific phrases
// follow the generic ones they contain.

var HairColorPhrases = []Phrase[HairColor]{
	{"black hair", HairBlack},
	{"dark hair", HairBlack},
	{"brown hair", HairBrown},
	{"brunette", HairBrown},
	{"blonde", HairBlonde},
	{"blond", HairBlonde},
	{"light hair", HairBlonde},
	{"golden hair", HairBlonde},
	{"red hair", HairRed},
	{"redhead", HairRed},
	{"ginger", HairRed},
	{"gray hair", HairGray},
	{"grey hair", HairGray},
	{"silver hair", HairGray},
	{"white hair", HairWhite},
	{"auburn", HairAuburn},
	{"auburn hair", HairAuburn},
}

var HairStylePhrases = []Phrase[HairStyle]{
	{"short hair", HairShort},
	{"buzz cut", HairBuzzCut},
	{"buzzcut", HairBuzzCut},
	{"long hair", HairLong},
	{"curly", HairCurly},
	{"curls", HairCurly},
	{"curly hair", HairCurly},
	{"straight hair", HairStraight},
	{"wavy", HairWavy},
	{"wavy hair", HairWavy},
	{"bald", HairBald},
	{"no hair", HairBald},
	{"shaved head", HairBald},
	{"balding", HairBald},
	{"ponytail", HairPonytail},
	{"pony tail", HairPonytail},
	{"bun", HairBun},
	{"hair bun", HairBun},
	{"top knot", HairBun},
	{"mohawk", HairMohawk},
}

var GlassesPhrases = []Phrase[GlassesStyle]{
	{"glasses", GlassesRectangular},
	{"spectacles", GlassesRectangular},
	{"eyeglasses", GlassesRectangular},
	{"wears glasses", GlassesRectangular},
	{"round glasses", GlassesRound},
	{"square glasses", GlassesSquare},
	{"rectangular glasses", GlassesRectangular},
	{"aviators", GlassesAviator},
	{"aviator glasses", GlassesAviator},
}

var FacialHairPhrases = []Phrase[FacialHairStyle]{
	{"beard", FacialBeard},
	{"bearded", FacialBeard},
	{"full beard", FacialBeard},
	{"big beard", FacialBeard},
	{"goatee", FacialGoatee},
	{"mustache", FacialMustache},
	{"moustache", FacialMustache},
	{"stubble", FacialStubble},
	{"five o'clock shadow", FacialStubble},
	{"scruffy", FacialStubble},
	{"soul patch", FacialSoulPatch},
}

var AgePhrases = []Phrase[AgeRange]{
	{"young", AgeYoung},
	{"twenties", AgeYoung},
	{"in their 20s", AgeYoung},
	{"middle aged", AgeMiddle},
	{"middle-aged", AgeMiddle},
	{"thirties", AgeMiddle},
	{"forties", AgeMiddle},
	{"in their 30s", AgeMiddle},
	{"in their 40s", AgeMiddle},
	{"older", AgeOlder},
	{"elderly", AgeOlder},
	{"senior", AgeOlder},
	{"fifties", AgeOlder},
	{"sixties", AgeOlder},
	{"gray", AgeOlder},
}

var FaceShapePhrases = []Phrase[FaceShape]{
	{"round face", FaceRound},
	{"chubby", FaceRound},
	{"full face", FaceRound},
	{"oval face", FaceOval},
	{"square face", FaceSquare},
	{"strong jaw", FaceSquare},
	{"angular", FaceSquare},
	{"long face", FaceLong},
	{"narrow face", FaceLong},
	{"heart shaped", FaceHeart},
	{"heart-shaped", FaceHeart},
}

var SkinTonePhrases = []Phrase[SkinTone]{
	{"pale", SkinLight},
	{"fair skin", SkinLight},
	{"light skin", SkinLight},
	{"medium skin", SkinMedium},
	{"olive", SkinMedium},
	{"tan", SkinTan},
	{"tanned", SkinTan},
	{"dark skin", SkinDark},
	{"deep skin", SkinDark},
}

// OriginKeywords lists countries and nationalities. Only the first one found
// is reported.
var OriginKeywords = []string{
	"colombia", "colombian", "guatemala", "guatemalan", "mexico", "mexican",
	"brazil", "brazilian", "argentina", "argentine", "peru", "peruvian",
	"chile", "chilean", "venezuela", "venezuelan", "ecuador", "ecuadorian",
	"spain", "spanish", "france", "french", "germany", "german",
	"italy", "italian", "ireland", "irish", "england", "english", "british",
	"scotland", "scottish", "poland", "polish", "russia", "russian",
	"ukraine", "ukrainian", "china", "chinese", "japan", "japanese",
	"korea", "korean", "india", "indian", "vietnam", "vietnamese",
	"thailand", "thai", "philippines", "filipino", "filipina",
	"nigeria", "nigerian", "kenya", "kenyan", "ethiopia", "ethiopian",
	"egypt", "egyptian", "morocco", "moroccan", "south africa", "south african",
	"iran", "iranian", "persian", "turkey", "turkish", "israel", "israeli",
	"canada", "canadian", "australia", "australian", "new zealand",
}

// DescriptiveKeywords are kept as keywords but never affect the sketch.
var DescriptiveKeywords = []string{
	"tall", "short", "average height", "slim", "thin", "heavy", "stocky",
	"athletic", "muscular", "petite", "large", "broad shoulders",
	"friendly", "serious", "warm smile", "friendly smile", "bright smile",
	"kind eyes", "intense", "gentle", "quiet", "loud", "energetic",
	"handsome", "beautiful", "attractive", "pretty", "cute",
}
