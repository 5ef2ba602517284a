//go:build amd64
// +build amd64

/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package saxjson

import "github.com/klauspost/cpuid/v2"

// supportedCPU reports whether the batched whitespace-skip loop in
// whitespace.go can be used. SSE2 is baseline on amd64, so in practice
// this is always true; the check is kept for parity with the
// teacher's SupportedCPU() gate and as a single place to raise the bar
// if a wider batch width is added later.
func supportedCPU() bool {
	return cpuid.CPU.Supports(cpuid.SSE2)
}
