package skills

// Vocabulary is the closed list of skill terms the extractor recognizes.
// Terms are stored in canonical lower-case form; multi-word terms use a
// single space between words.
var Vocabulary = []string{
	"python", "java", "c++", "c#", "javascript", "typescript", "sql", "nosql", "mongodb", "postgresql",
	"react", "angular", "vue.js", "next.js", "nodejs", "express.js", "fastapi", "django", "flask",
	"machine learning", "deep learning", "nlp", "natural language processing", "computer vision",
	"data analysis", "data science", "pandas", "numpy", "scikit-learn", "matplotlib",
	"tensorflow", "pytorch", "keras", "aws", "azure", "google cloud", "gcp", "docker",
	"kubernetes", "ci/cd", "jenkins", "git", "github", "agile", "scrum", "jira",
	"project management", "product management", "communication", "teamwork", "leadership", "flutter",
	"dart", "firebase", "restful apis", "graphql", "kafka", "data structures", "algorithms",
	"problem-solving", "adaptability", "solidity", "bloc",
}

// CoreSkills is the higher-value subset preferred when composing job-search
// queries. It may contain terms outside Vocabulary.
var CoreSkills = []string{
	"python", "java", "c++", "javascript", "typescript", "sql", "react", "angular", "vue.js",
	"next.js", "nodejs", "django", "flask", "fastapi", "machine learning", "aws", "azure",
	"docker", "kubernetes", "flutter", "swift", "kotlin",
}

var coreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CoreSkills))
	for _, term := range CoreSkills {
		set[term] = struct{}{}
	}
	return set
}()

// IsCore reports whether a canonical (lower-case) skill term belongs to the
// core subset.
func IsCore(term string) bool {
	_, ok := coreSet[term]
	return ok
}
