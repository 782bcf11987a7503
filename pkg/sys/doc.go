// Package sys provides thin, error-returning wrappers around the Linux
// kernel facilities an endpoint agent needs but should not reimplement
// inline: boot-relative monotonic time, system configuration queries
// (clock tick, page size), kernel-sourced randomness, process signaling,
// resource limits, public-IP classification, and detection of active
// Linux security modules.
//
// Nothing here is cached: every call reflects current kernel state, and
// every fallible call surfaces the underlying OS error for the caller to
// branch on with errors.Is.
package sys
