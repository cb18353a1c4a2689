package services

// applySkills folds the skill tags of an approved certificate into the
// student's aggregate counts. The map is copied so a failed write retry never
// sees a half-applied update; tags listed twice on one certificate count
// twice.
func applySkills(current map[string]int, tags []string) map[string]int {
	updated := make(map[string]int, len(current)+len(tags))
	for skill, count := range current {
		updated[skill] = count
	}
	for _, tag := range tags {
		updated[tag]++
	}
	return updated
}
