// Package lib holds modules that do not fit strictly into other layers:
// background job processing (asynq over Redis) and the email client (Resend).
package lib
