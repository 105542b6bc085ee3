//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package main

import "golang.org/x/sys/unix"

// niceness applied by --nice, same as running under `nice -n 10`.
const niceness = 10

// lowerPriority raises the niceness of the current process.
func lowerPriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, niceness)
}
