package dispatchers

import (
	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/params"
)

type RootSpec struct {
	Name       string
	Summary    string
	Usage      string
	Attributes map[string]string
	Conditions []conditions.Condition
}

// GroupSpec declares a group. The zero Parent is the root. An empty Key
// makes the group transparent.
type GroupSpec struct {
	Key         string
	Parent      NodeID
	Aliases     []string
	Summary     string
	Description string
	Attributes  map[string]string
	Conditions  []conditions.Condition
	DeclaredBy  string
}

// CommandSpec declares a command. The zero Parent is the root. An empty
// Key makes the command its parent's default.
type CommandSpec struct {
	Key         string
	Parent      NodeID
	Aliases     []string
	Summary     string
	Description string
	Usage       string
	Category    CommandCategory
	Params      []params.Shape
	Attributes  map[string]string
	Conditions  []conditions.Condition
	Handler     Handler
}
