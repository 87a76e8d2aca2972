package shaders

// IsStale reports whether source has to be compiled. That's the case if there's no compiled file
// or if the compiled file is strictly older than the source.
func IsStale(source, match *Entry) bool {
	return match == nil || match.ModTime.Before(source.ModTime)
}

// Plan determines which sources have to be compiled. If force is set, every source is included
// except those that were matched with themselves.
// The second return value lists the paths of files that were skipped because their name isn't
// of the form <name>.<type>.
func Plan(groups []*Group, force bool) ([]Job, []string) {
	jobs := make([]Job, 0)
	skipped := make([]string, 0)

	for _, group := range groups {
		for _, entry := range group.Entries {
			if !entry.WellFormed() {
				skipped = append(skipped, entry.Path)
				continue
			}

			if !entry.IsSource() {
				continue
			}

			match := group.Match(entry)
			var reason Reason
			switch {
			case match == nil:
				reason = ReasonMissing
			case IsStale(entry, match):
				reason = ReasonOutdated
			case force && match != entry:
				// a source paired with itself has no separate output; compiling it would overwrite the source
				reason = ReasonForced
			default:
				continue
			}

			jobs = append(jobs, Job{
				Group:  group,
				Source: entry,
				Match:  match,
				Output: group.OutputPath(entry, match),
				Reason: reason,
			})
		}
	}

	return jobs, skipped
}
