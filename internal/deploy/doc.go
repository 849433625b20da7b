// Package deploy syncs a Rynex build output directory to an S3 bucket.
//
// Every file under dist/ is uploaded under the configured key prefix with
// a MIME type guessed from its extension. With pruning enabled, remote
// objects that no longer exist locally are deleted, so the bucket mirrors
// the latest build.
package deploy
