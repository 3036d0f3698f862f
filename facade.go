package ereport

// Facade helpers logging through the MAIN reporter.
// Usage: ereport.Info("listening")

func Trace(msg string, site ...CallSite) error   { return Main().log(1, LevelTrace, msg, site) }
func Debug(msg string, site ...CallSite) error   { return Main().log(1, LevelDebug, msg, site) }
func Success(msg string, site ...CallSite) error { return Main().log(1, LevelSuccess, msg, site) }
func Info(msg string, site ...CallSite) error    { return Main().log(1, LevelInfo, msg, site) }
func Warn(msg string, site ...CallSite) error    { return Main().log(1, LevelWarn, msg, site) }
func Error(msg string, site ...CallSite) error   { return Main().log(1, LevelError, msg, site) }
func Severe(msg string, site ...CallSite) error  { return Main().log(1, LevelSevere, msg, site) }
func Fatal(msg string, site ...CallSite) error   { return Main().log(1, LevelFatal, msg, site) }
