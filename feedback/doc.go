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


// Package feedback carries user reactions and lessons back to the record
// store without ever blocking or breaking the search flow.
//
// The Channel validates input synchronously, then hands delivery to a
// worker pool. Delivery failures are logged, never surfaced: the local
// vote state and confirmation message stand regardless of what the sink
// does with the event.
package feedback
