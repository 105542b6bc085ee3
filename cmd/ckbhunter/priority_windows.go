//go:build windows

package main

import (
	"syscall"
)

// Windows priority constants
const (
	BELOW_NORMAL_PRIORITY_CLASS = 0x00004000
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess = kernel32.NewProc("GetCurrentProcess")
	procSetPriorityClass  = kernel32.NewProc("SetPriorityClass")
)

// lowerPriority moves the process to below normal priority so a long
// search does not starve interactive programs.
func lowerPriority() error {
	handle, _, _ := procGetCurrentProcess.Call()

	ret, _, err := procSetPriorityClass.Call(handle, BELOW_NORMAL_PRIORITY_CLASS)
	if ret == 0 {
		return err
	}
	return nil
}
