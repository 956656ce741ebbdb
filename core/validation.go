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

import (
	"fmt"
	"strings"
)

// ValidateProject validates a Project according to domain rules.
//
// Validation rules:
//   - ProjectName must not be empty
//   - Status must be valid (Planning, Active, or Completed)
//   - TrustScore must be in [0,1]
//   - SimilarityScore must be in [0,1]
//
// NOT validated (populated elsewhere):
//   - Lessons (can be empty; appended by the feedback channel)
//   - ID (0 is valid from database sequences)
func ValidateProject(project *Project) error {
	if project == nil {
		return fmt.Errorf("%w: project is nil", ErrInvalidProject)
	}

	if project.ProjectName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProject, ErrEmptyProjectName)
	}

	if err := ValidateStatus(project.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	if !scoreInRange(project.TrustScore) {
		return fmt.Errorf("%w: trust %w", ErrInvalidProject, ErrScoreOutOfRange)
	}

	if !scoreInRange(project.SimilarityScore) {
		return fmt.Errorf("%w: similarity %w", ErrInvalidProject, ErrScoreOutOfRange)
	}

	return nil
}

// ValidateLesson validates a Lesson according to domain rules.
//
// Validation rules:
//   - Text must not be empty after trimming whitespace
func ValidateLesson(lesson *Lesson) error {
	if lesson == nil {
		return fmt.Errorf("%w: lesson is nil", ErrInvalidLesson)
	}

	if strings.TrimSpace(lesson.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLesson, ErrEmptyLessonText)
	}

	return nil
}

// ValidateFilterState validates a FilterState according to domain rules.
//
// Validation rules:
//   - MinTrustScore must be in [0,1]
func ValidateFilterState(filters FilterState) error {
	if !scoreInRange(filters.MinTrustScore) {
		return fmt.Errorf("%w: %w", ErrInvalidFilterState, ErrScoreOutOfRange)
	}
	return nil
}

// ValidateStatus validates that a Status has a valid value.
func ValidateStatus(status Status) error {
	if status != StatusPlanning && status != StatusActive && status != StatusCompleted {
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
	return nil
}

// scoreInRange checks that a score is within [0,1].
func scoreInRange(score float64) bool {
	return score >= 0 && score <= 1
}
