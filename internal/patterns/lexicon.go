package patterns

// Lexicons for the quick quality filter and the intent classifier.

// givingUpPhrases are explicit statements of not knowing. Any match
// short-circuits full scoring with a high-confidence struggling result.
var givingUpPhrases = []string{
	"i don't know", "i dont know", "no idea", "not sure", "i'm not sure",
	"im not sure", "i forget", "i forgot", "can't remember",
	"cant remember", "i have no clue", "no clue", "i give up",
	"nothing comes to mind", "i'm lost", "im lost", "pass",
}

// GivingUpPhrases returns the giving-up lexicon.
func GivingUpPhrases() []string { return givingUpPhrases }

// metaProcessPhrases are questions or remarks about the tutoring process
// itself rather than the content under discussion.
var metaProcessPhrases = []string{
	"why are you asking", "why do you ask", "what's the point",
	"whats the point", "how does this work", "what is this for",
	"who are you", "what are you", "are you a bot", "are you an ai",
	"how long will this take", "how many questions", "can we stop",
	"can we take a break", "can i skip", "skip this", "move on",
	"change the topic", "different topic", "new topic", "start over",
}

// MetaProcessPhrases returns the process-question lexicon.
func MetaProcessPhrases() []string { return metaProcessPhrases }

// hintRequestPhrases ask for help with the question rather than answer it.
var hintRequestPhrases = []string{
	"give me a hint", "can i have a hint", "a hint please", "any hints",
	"help me out", "can you help", "what do you mean", "i don't understand the question",
	"i dont understand the question", "can you rephrase", "rephrase that",
	"repeat the question", "say that again", "what was the question",
}

// HintRequestPhrases returns the hint-request lexicon.
func HintRequestPhrases() []string { return hintRequestPhrases }

// smallTalkPhrases are off-topic conversational openers.
var smallTalkPhrases = []string{
	"hello", "hi there", "hey", "good morning", "good evening",
	"how are you", "thank you", "thanks", "that's cool", "thats cool",
	"interesting", "wow", "lol", "haha",
}

// SmallTalkPhrases returns the small-talk lexicon.
func SmallTalkPhrases() []string { return smallTalkPhrases }

// interactionConfusionPhrases express confusion about the interaction,
// as opposed to uncertainty about the content.
var interactionConfusionPhrases = []string{
	"i'm confused by this app", "im confused by this app",
	"what am i supposed to do", "what do you want from me",
	"i don't get what you're asking", "i dont get what youre asking",
	"this doesn't make sense", "this doesnt make sense",
	"what are we doing",
}

// InteractionConfusionPhrases returns the interaction-confusion lexicon.
func InteractionConfusionPhrases() []string { return interactionConfusionPhrases }
