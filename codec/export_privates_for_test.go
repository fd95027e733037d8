// SPDX-License-Identifier: MIT
// Test-only exports for package codec. Compiled only with `go test`.

package codec

// Classify_TestOnly exposes classify so tests can pin the errno mapping.
func Classify_TestOnly(err error) Reason { return classify(err) }
