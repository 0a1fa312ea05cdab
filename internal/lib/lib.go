// Package lib holds supporting code that does not belong to a single layer,
// currently the asynq background jobs under lib/job.
package lib
