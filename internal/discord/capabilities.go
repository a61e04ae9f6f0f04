package discord

// Extension capability, delegated to the manager so the admin operations and
// the bootstrap act on the same catalog.

func (b *Bot) Loaded() []string             { return b.exts.Loaded() }
func (b *Bot) Available() ([]string, error) { return b.exts.Available() }
func (b *Bot) Load(name string) error       { return b.exts.Load(name) }
func (b *Bot) Unload(name string) error     { return b.exts.Unload(name) }
func (b *Bot) Reload(name string) error     { return b.exts.Reload(name) }
