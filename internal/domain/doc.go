// Package domain contains the lesson plan request, the generated plan and the
// exported document, along with the errors shared by the services that
// produce them. It is independent of any transport or provider.
package domain
