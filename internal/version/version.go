package version

// AppVersion is the console build version shown in the boot banner and by `maraos version`.
var AppVersion = "1.0.0"
