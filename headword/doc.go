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

// Package headword extracts the headword and content of a dictionary article
// stored as an XML document.
//
// The document is scanned as a stream of XML tokens rather than parsed into a
// tree. The headword region is the first element that either:
//  1. has a name equal to the configured tag, or
//  2. has a class attribute whose value equals the configured tag.
//
// In strict mode a match only counts inside an entry region, an element whose
// class attribute is "entry". Elements sharing the entry's name are counted so
// that the entry's own end tag is recognized even when it contains nested
// elements of the same name.
//
// The content of an article is the document with its XML declaration removed.
package headword
