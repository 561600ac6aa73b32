package tracker

import "github.com/iamshubhamjangle/trackle/internal/domain"

func (t *Tracker) updateOptions(fn func(*domain.ViewOptions)) (domain.ViewOptions, error) {
	opts, err := t.ViewOptions()
	if err != nil {
		return opts, err
	}
	fn(&opts)
	return opts, t.saveViewOptions(opts)
}

// SetViewOptions replaces the stored options and syncs the session order.
func (t *Tracker) SetViewOptions(opts domain.ViewOptions) error {
	if !opts.CategoryWise {
		opts.AllFolded = false
	}
	if err := t.saveViewOptions(opts); err != nil {
		return err
	}
	if !opts.Randomize {
		t.session.Reset()
	}
	return nil
}

// ToggleShowDifficulty flips difficulty badges on or off.
func (t *Tracker) ToggleShowDifficulty() (domain.ViewOptions, error) {
	return t.updateOptions(func(o *domain.ViewOptions) { o.ShowDifficulty = !o.ShowDifficulty })
}

// ToggleStarredFilter flips the starred-only filter.
func (t *Tracker) ToggleStarredFilter() (domain.ViewOptions, error) {
	return t.updateOptions(func(o *domain.ViewOptions) { o.Starred = !o.Starred })
}

// ToggleRandomize flips random ordering. Enabling it draws a new session
// order; disabling it discards the order.
func (t *Tracker) ToggleRandomize() (domain.ViewOptions, error) {
	opts, err := t.updateOptions(func(o *domain.ViewOptions) { o.Randomize = !o.Randomize })
	if err != nil {
		return opts, err
	}
	if !opts.Randomize {
		t.session.Reset()
		return opts, nil
	}
	qs, err := t.Questions()
	if err != nil {
		return opts, err
	}
	t.session.Regenerate(qs)
	return opts, nil
}

// ToggleCategoryWise flips grouping by tag. Leaving category mode also
// unfolds everything since folding only applies to tag groups.
func (t *Tracker) ToggleCategoryWise() (domain.ViewOptions, error) {
	return t.updateOptions(func(o *domain.ViewOptions) {
		o.CategoryWise = !o.CategoryWise
		if !o.CategoryWise {
			o.AllFolded = false
		}
	})
}

// ToggleAllFolded folds or unfolds every tag group. It is a no-op outside
// category mode.
func (t *Tracker) ToggleAllFolded() (domain.ViewOptions, error) {
	opts, err := t.ViewOptions()
	if err != nil || !opts.CategoryWise {
		return opts, err
	}
	opts.AllFolded = !opts.AllFolded
	return opts, t.saveViewOptions(opts)
}
