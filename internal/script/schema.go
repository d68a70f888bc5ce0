package script

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a script file.
type File struct {
	Runs []*Run   `hcl:"run,block"`
	Body hcl.Body `hcl:",remain"`
}

// Run is one `run` block: the command name and its unevaluated arguments.
type Run struct {
	Command  string    `hcl:"command,label"`
	Body     hcl.Body  `hcl:",remain"`
	DefRange hcl.Range `hcl:",def_range"`
}
