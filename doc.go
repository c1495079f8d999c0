// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ipadic implements building and packaging IPA dictionaries for the
// igo morphological analyzer.
//
// A dictionary build runs in four steps:
//  1. A stale output archive is removed if present.
//  2. The external dictionary builder compiles the lexicon source files
//     (tab-separated word entries in a legacy encoding such as EUC-JP) into
//     a directory of binary dictionary files.
//  3. The dictionary directory is packaged into a zip archive.
//  4. The intermediate directory is removed, leaving the archive as the
//     only build output.
//
// The compiled dictionary format is owned by the external builder and is
// not interpreted by this module. Supporting packages handle the pieces
// around it: lexicon scans and validates lexicon source files, archive
// packs and unpacks dictionary archives, and kana romanizes kana text the
// way a dictionary consumer would present readings.
package ipadic
