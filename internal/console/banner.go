package console

const banner = `
███╗   ███╗    █████╗    ██████╗     █████╗         ██████╗ ███████╗
████╗ ████║   ██╔══██╗   ██╔══██╗   ██╔══██╗       ██╔═══██╗██╔════╝
██╔████╔██║   ███████║   ██████╔╝   ███████║       ██║   ██║███████╗
██║╚██╔╝██║   ██╔══██║   ██╔══██╗   ██╔══██║       ██║   ██║╚════██║
██║ ╚═╝ ██║██╗██║  ██║██╗██║  ██║██╗██║  ██║██╗    ╚██████╔╝███████║
╚═╝     ╚═╝╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝     ╚═════╝ ╚══════╝`

const credits = "Made by OldMartijntje."

const about = `M.A.R.A. OS – Your Ultimate AI-Integrated Operating System

Built using ███████, the most advanced and reliable programming language available. This console is specifically designed for use by ████████ Agents, allowing them to access ███████████████████ securely, without any compromise to their data or operations.

⚠ Security Notice: Unauthorized access is strictly prohibited and will be met with immediate and irreversible consequences.

M.A.R.A. OS isn’t just another operating system. It's a unique fusion of AI and OS, ensuring your data remains protected at all costs. The system has been involved in █████████████ incidents where unauthorized ██████████ intrusions were swiftly █████████ by M.A.R.A. OS.

This outcome was inevitable, given that M.A.R.A. OS possesses unrestricted access to ███████████, ensuring no breach goes unanswered.`

const (
	welcomeText = "Welcome to M.A.R.A."
	helpHint    = "Type 'help' for a list of commands."
)
