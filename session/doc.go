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


// Package session tracks the lifecycle of an interactive search session.
//
// A Session owns the query state machine (idle, searching, success, empty,
// error), the bounded recent-query history, the active filter state, and
// the corpus totals shown alongside results.
//
// Sessions are safe for concurrent use. When searches overlap, the last
// issued query wins: results from superseded searches are discarded.
package session
