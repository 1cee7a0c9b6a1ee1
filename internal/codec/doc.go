// Package codec writes the output formats of the asset tools: lossy WebP with
// alpha, and PNG.
//
// WebP encoding wraps libwebp (via kolesa-team/go-webp). PNG encoding uses
// bild's imgio and needs no native library.
//
// # Prerequisites
//
// libwebp development files must be installed and cgo enabled at build time:
//   - Ubuntu/Debian: apt-get install libwebp-dev
//   - macOS: brew install webp
//   - Windows (MSYS2): pacman -S mingw-w64-x86_64-libwebp
//
// libwebp is a build-time requirement: with cgo enabled, a host without the
// libwebp headers fails to compile this package rather than producing a
// binary that prints InstallHint. Build with CGO_ENABLED=0 on such hosts.
//
// A binary built without cgo still runs, but every WebP call fails with
// ErrWebPUnavailable. Call Available before starting a batch so the user gets
// the install instructions once instead of one failure per file.
//
// # Encoding Parameters
//
// DefaultWebPOptions matches what the asset pipeline has always used:
//   - Quality 80 (lossy, alpha channel preserved)
//   - Method 6 (slowest, best compression)
package codec
