package constants

// Layer names recorded on spans and operation metrics.
const (
	HandlerLayer    = "handler"
	ServiceLayer    = "service"
	RepositoryLayer = "repository"
)

// InstrumentationName is the scope used for tracers and meters owned by this module.
const InstrumentationName = "github.com/git-pranav2004/getdeal"
