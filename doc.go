// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmldict converts a directory of XML dictionary articles into a
// single flat text dictionary file.
//
// Every .xml file below the input directory is one article. Articles are
// processed concurrently by a fixed pool of workers:
//  1. A worker claims the next file from a shared queue.
//  2. The worker reads the file and extracts its headword and content with
//     package headword.
//  3. The outcome is handed to a single writer which writes records in the
//     order files were discovered, regardless of the order workers finish.
//
// Files without a headword are skipped and files that cannot be read or
// parsed are reported as failed. Neither stops the conversion.
//
// The output format is described in package mdict.
package xmldict
