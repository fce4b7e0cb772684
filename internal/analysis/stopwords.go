package analysis

// englishStopwords is the standard English function-word list. Contraction
// fragments ("don", "isn", "ve") are included because the normalizer strips
// apostrophes and leaves them behind as bare tokens.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "can", "will", "should", "dont", "cant", "wont", "didnt",
	"doesnt", "isnt", "arent", "wasnt", "werent", "hasnt", "havent", "im",
	"ive", "youre", "youve", "hes", "shes", "its", "were", "theyre", "thats",
	"don", "didn", "doesn", "isn", "aren", "wasn", "weren", "hasn", "haven",
	"won", "wouldn", "couldn", "shouldn", "ain", "gonna", "gotta",
}

// youtubeStopwords are terms that dominate every comment section without
// carrying topical signal.
var youtubeStopwords = []string{
	"video", "videos", "youtube", "channel", "subscribe", "like", "comment",
	"watch", "watching", "watched", "thanks", "thank", "please", "great",
	"good", "best", "love", "really", "just", "make", "made", "making",
	"now", "get", "one", "would", "could",
}

// DefaultStopwords returns a fresh copy of the combined English and
// YouTube-specific lists.
func DefaultStopwords() []string {
	words := make([]string, 0, len(englishStopwords)+len(youtubeStopwords))
	words = append(words, englishStopwords...)
	words = append(words, youtubeStopwords...)
	return words
}

func buildStopwordSet(words []string) map[string]struct{} {
	if words == nil {
		words = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
