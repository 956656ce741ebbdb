// Copyright 2025 Poiesic Systems
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


// Package search provides project retrieval over pluggable record stores.
//
// The Searcher type runs a query through a Fetcher, which is either:
//   - LocalFetcher: matches and filters an in-process corpus
//   - RemoteFetcher: delegates matching and filtering to a search service
//
// Local candidates pass through a deterministic pipeline: text matching,
// then the trust floor, then category and region facets. Results are
// ranked by similarity score, highest first.
package search
