package services

import (
	"fmt"
	"strings"
)

// SelectVideo returns the curated tutorial for (hobby, skillLevel, dayNumber).
// Deterministic: the same inputs always yield the same video.
//
// Day numbers past the end of a curated sequence clamp to the last entry.
// Missing skill levels fall back intermediate -> some -> beginner. Hobbies
// without a curated sequence get the single fallback video id with a generic
// title templated on the hobby name.
func SelectVideo(hobby, skillLevel string, dayNumber int) (string, string) {
	ref := selectVideoRef(NormalizeHobby(hobby), normalizeSkillLevel(skillLevel), dayNumber)
	return ref.VideoID, ref.Title
}

func selectVideoRef(hobby, level string, dayNumber int) VideoRef {
	levels, ok := videoCatalog[hobby]
	if !ok {
		return genericVideo(hobby, dayNumber)
	}

	for _, candidate := range levelFallbackOrder(level) {
		if sequence, ok := levels[candidate]; ok && len(sequence) > 0 {
			return sequence[clampDayIndex(dayNumber, len(sequence))]
		}
	}

	return genericVideo(hobby, dayNumber)
}

func genericVideo(hobby string, dayNumber int) VideoRef {
	if hobby == "" {
		return fallbackVideo
	}
	title := genericVideoTitles[clampDayIndex(dayNumber, len(genericVideoTitles))]
	return VideoRef{
		VideoID: fallbackVideo.VideoID,
		Title:   fmt.Sprintf(title, titleCase(hobby)),
	}
}

func clampDayIndex(dayNumber, sequenceLength int) int {
	index := dayNumber - 1
	if index < 0 {
		index = 0
	}
	if index > sequenceLength-1 {
		index = sequenceLength - 1
	}
	return index
}

func levelFallbackOrder(level string) []string {
	switch level {
	case "intermediate":
		return []string{"intermediate", "some", "beginner"}
	case "some":
		return []string{"some", "beginner"}
	default:
		return []string{"beginner"}
	}
}

func normalizeSkillLevel(skillLevel string) string {
	switch strings.ToLower(strings.TrimSpace(skillLevel)) {
	case "intermediate", "advanced":
		return "intermediate"
	case "some", "some experience":
		return "some"
	default:
		return "beginner"
	}
}

func hasCuratedVideos(hobby string) bool {
	_, ok := videoCatalog[NormalizeHobby(hobby)]
	return ok
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
