package metadata

// FeatureRule maps a dependency name to a feature phrase.
type FeatureRule struct {
	Dependency string
	Phrase     string
	// Dev also matches development dependencies.
	Dev bool
}

// DescriptionRule maps a matched feature phrase to a description sentence.
type DescriptionRule struct {
	Phrase   string
	Sentence string
}

// Feature phrases referenced by the description table.
const (
	PhraseExpress = "Express web server"
	PhraseReact   = "React front-end"
	PhraseVue     = "Vue.js front-end"
	PhraseNext    = "Next.js framework"
	PhraseCobra   = "Cobra command-line interface"
	PhraseGin     = "Gin web server"
)

// NPMFeatures is checked in order against package.json dependencies.
var NPMFeatures = []FeatureRule{
	{Dependency: "express", Phrase: PhraseExpress},
	{Dependency: "react", Phrase: PhraseReact},
	{Dependency: "vue", Phrase: PhraseVue},
	{Dependency: "next", Phrase: PhraseNext},
	{Dependency: "nestjs", Phrase: "NestJS backend"},
	{Dependency: "mongoose", Phrase: "MongoDB/Mongoose integration"},
	{Dependency: "sequelize", Phrase: "Sequelize ORM"},
	{Dependency: "socket.io", Phrase: "Real-time communication (Socket.io)"},
	{Dependency: "nodemon", Phrase: "Hot-reloading with nodemon", Dev: true},
	{Dependency: "typescript", Phrase: "TypeScript support", Dev: true},
}

// GoFeatures is checked in order against go.mod direct requirements.
var GoFeatures = []FeatureRule{
	{Dependency: "github.com/spf13/cobra", Phrase: PhraseCobra},
	{Dependency: "github.com/gin-gonic/gin", Phrase: PhraseGin},
	{Dependency: "github.com/go-chi/chi/v5", Phrase: "Chi HTTP router"},
}

// Descriptions is checked in order; the first rule whose phrase was matched wins.
var Descriptions = []DescriptionRule{
	{Phrase: PhraseExpress, Sentence: "A Node.js project using Express for web server functionality."},
	{Phrase: PhraseReact, Sentence: "A React-based front-end project."},
	{Phrase: PhraseVue, Sentence: "A Vue.js-based front-end project."},
	{Phrase: PhraseNext, Sentence: "A Next.js full-stack application."},
	{Phrase: PhraseCobra, Sentence: "A Go command-line application built with Cobra."},
	{Phrase: PhraseGin, Sentence: "A Go web service built with Gin."},
}

// Fixed fallbacks.
const (
	DefaultFeature     = "Fast, Reliable, Easy to use"
	GenericDescription = "A wonderful project!"
	NPMInstall         = "npm install"
	GoInstall          = "go mod download"
	GenericUsage       = "Check the documentation for details."
)
