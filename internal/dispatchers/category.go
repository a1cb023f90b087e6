package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryBasics                        // Everyday commands: echo, greet
	CategoryCompute                       // Arithmetic commands
	CategoryInspect                       // Invocation history, help
	CategoryUtility                       // ping, version, config
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryBasics:
		return "basic commands"
	case CategoryCompute:
		return "compute"
	case CategoryInspect:
		return "inspect invocations"
	case CategoryUtility:
		return "utilities"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryBasics,
	CategoryCompute,
	CategoryInspect,
	CategoryUtility,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
