//go:build !unix

package benchmark

import "os/exec"

// killProcessGroup keeps the default cancellation, which only kills cmd; WaitDelay bounds the wait on its children
func killProcessGroup(cmd *exec.Cmd) {}
