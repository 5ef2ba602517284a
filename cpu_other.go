//go:build !amd64
// +build !amd64

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

// supportedCPU always reports false off amd64: the batched whitespace
// skip in whitespace.go relies on encoding/binary.LittleEndian reads
// being cheap, which only reliably pays for itself on the platform
// this library is tuned for.
func supportedCPU() bool {
	return false
}
