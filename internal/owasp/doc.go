// Package owasp provides a fixed set of security user stories derived from the OWASP
// application security verification requirements. Every story carries the Label label.
package owasp
