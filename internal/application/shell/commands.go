package shell

// command is the closed set of operations a line can select.
type command int

const (
	cmdUnknown command = iota
	cmdSelectFile
	cmdDelete
	cmdMakeFile
	cmdMakeFolder
	cmdList
	cmdPwd
	cmdClear
	cmdUprint
	cmdExecuteScript
	cmdHelp
	cmdExit
)

var commandNames = map[string]command{
	"select-file":    cmdSelectFile,
	"delete":         cmdDelete,
	"makefile":       cmdMakeFile,
	"makefolder":     cmdMakeFolder,
	"ls":             cmdList,
	"pwd":            cmdPwd,
	"clear":          cmdClear,
	"uprint":         cmdUprint,
	"execute_script": cmdExecuteScript,
	"help":           cmdHelp,
	"exit":           cmdExit,
}

func lookupCommand(name string) command {
	if cmd, ok := commandNames[name]; ok {
		return cmd
	}
	return cmdUnknown
}

const helpText = `Available commands:
  select-file <file>     Select a file
  delete                 Delete the selected file
  makefile <file>        Create an empty file
  makefolder <folder>    Create a folder and any missing parents
  ls [-l]                List the current directory
  pwd                    Print the working directory
  clear                  Clear the screen
  uprint <message>       Print a message
  execute_script <file>  Run a script
  help                   Show this help
  exit                   Leave the shell
`

const (
	usageSelectFile    = "Usage: select-file <file>"
	usageMakeFile      = "Usage: makefile <file>"
	usageMakeFolder    = "Usage: makefolder <folder>"
	usageExecuteScript = "Usage: execute_script <file>"

	msgNoFileSelected = "No file selected"
)
