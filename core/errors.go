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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProject indicates a Project failed validation.
	ErrInvalidProject = errors.New("invalid project")

	// ErrInvalidLesson indicates a Lesson failed validation.
	ErrInvalidLesson = errors.New("invalid lesson")

	// ErrInvalidFilterState indicates a FilterState failed validation.
	ErrInvalidFilterState = errors.New("invalid filter state")

	// ErrInvalidStatus indicates an invalid Status value.
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrEmptyProjectName indicates the ProjectName field is empty.
	ErrEmptyProjectName = errors.New("project name cannot be empty")

	// ErrEmptyLessonText indicates the lesson Text field is empty after trimming.
	ErrEmptyLessonText = errors.New("lesson text cannot be empty")

	// ErrScoreOutOfRange indicates a score outside the [0,1] range.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 1")
)
