// Package version provides build-time version information.
//
// Set it during build with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/coursenav/version.Version=1.2.3 \
//	  -X github.com/ncobase/coursenav/version.Branch=main \
//	  -X github.com/ncobase/coursenav/version.Revision=abc123 \
//	  -X 'github.com/ncobase/coursenav/version.BuiltAt=$(date)'" ./cmd/coursenav
//
// Unset values fall back to the VCS information the go tool embeds.
package version
