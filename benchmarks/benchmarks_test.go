/*
 * MinIO Cloud Storage, (C) 2022 MinIO, Inc.
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

// Package saxjson_benchmarks races sax-json's event-stream Parse against
// the oracle libraries it's validated against in conformance_test.go, the
// same comparison the teacher's own benchmarks package ran against its
// DOM-tape Parse.
package saxjson_benchmarks

import (
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"

	saxjson "github.com/minio/sax-json"
)

const fixtureFlat = `{"id":1234567,"name":"structural bits","active":true,"tags":["a","b","c","d"],"score":12.5,"note":null}`

const fixtureNested = `{
	"users": [
		{"id": 1, "name": "alice", "roles": ["admin", "ops"], "meta": {"verified": true, "score": 9.5}},
		{"id": 2, "name": "bob", "roles": ["dev"], "meta": {"verified": false, "score": 7.25}},
		{"id": 3, "name": "carol", "roles": [], "meta": {"verified": true, "score": 10}}
	],
	"count": 3,
	"generated_at": "2026-07-29T00:00:00Z"
}`

func benchmarkEncodingJSON(b *testing.B, msg string) {
	data := []byte(msg)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(data, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkJsoniter(b *testing.B, msg string) {
	data := []byte(msg)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := cfg.Unmarshal(data, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkSonic(b *testing.B, msg string) {
	data := []byte(msg)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(data, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkSaxJSON(b *testing.B, msg string) {
	data := []byte(msg)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	scratch := saxjson.NewScratch(64)
	h := saxjson.Handlers{}
	for i := 0; i < b.N; i++ {
		if _, err := saxjson.Parse(data, h, scratch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodingJSONFlat(b *testing.B)   { benchmarkEncodingJSON(b, fixtureFlat) }
func BenchmarkEncodingJSONNested(b *testing.B) { benchmarkEncodingJSON(b, fixtureNested) }

func BenchmarkJsoniterFlat(b *testing.B)   { benchmarkJsoniter(b, fixtureFlat) }
func BenchmarkJsoniterNested(b *testing.B) { benchmarkJsoniter(b, fixtureNested) }

func BenchmarkSonicFlat(b *testing.B)   { benchmarkSonic(b, fixtureFlat) }
func BenchmarkSonicNested(b *testing.B) { benchmarkSonic(b, fixtureNested) }

func BenchmarkSaxJSONFlat(b *testing.B)   { benchmarkSaxJSON(b, fixtureFlat) }
func BenchmarkSaxJSONNested(b *testing.B) { benchmarkSaxJSON(b, fixtureNested) }
