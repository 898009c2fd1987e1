// Package logging provides a thin structured-logging facade for the
// comparison tool. It narrows zerolog to the handful of calls the
// application layers need, keeping packages decoupled from the backend.
package logging
