package console

import "fmt"

// Boot stage names. Each stage runs when the loading bar before it completes.
const (
	StageSystemData      = "system-data"
	StageVulnerabilities = "vulnerabilities"
	StageFiles           = "files"
	StageReboot          = "reboot"
	StageStartup         = "startup"
)

type stageFunc func(in *Interpreter)

var stages = map[string]stageFunc{
	StageSystemData: func(in *Interpreter) {
		in.Print("Loading System Data...")
		in.Emit(NewProgressLine(5, StageVulnerabilities))
	},
	StageVulnerabilities: func(in *Interpreter) {
		in.Print("Checking for Vulnerabilities...")
		in.Emit(NewProgressLine(12, StageFiles))
	},
	StageFiles: func(in *Interpreter) {
		in.Print("Loading M.A.R.A. Files...")
		in.Emit(NewProgressLine(200, StageReboot))
	},
	StageReboot: func(in *Interpreter) {
		in.Print("M.A.R.A. Files Loaded!")
		in.Print("Rebooting...")
		in.Emit(NewProgressLine(69, StageStartup))
	},
	StageStartup: startup,
}

// boot queues the startup animation and locks input until it finishes.
func (in *Interpreter) boot() {
	in.allowInput = false
	now := in.now()
	in.Print(banner)
	in.Print("Console v" + in.version)
	in.Print(fmt.Sprintf("Current Date: %d/%d/%d", now.Day(), int(now.Month()), now.Year()))
	in.Print("Loading Kernel...")
	in.Emit(NewProgressLine(50, StageSystemData))
}

func startup(in *Interpreter) {
	in.Clear()
	in.allowInput = true
	in.Print(welcomeText)
	in.Print(helpHint)
}

func (in *Interpreter) runStage(name string) {
	fn, ok := stages[name]
	if !ok {
		in.log.Debug("unknown animation stage", "stage", name)
		return
	}
	fn(in)
}
