package devtools

// Authorize is the single authorization decision. With no selectors at all the
// call is unrestricted. Otherwise evaluation order matters and is not
// symmetric: blacklist membership wins over whitelist membership, which wins
// over the group check. A caller on none of the configured selectors is
// denied — including the case where only a blacklist was given and the caller
// is not on it.
func (d *DevTools) Authorize(group, whitelist, blacklist string, userID int64) bool {
	if group == "" && whitelist == "" && blacklist == "" {
		return true
	}
	if blacklist != "" && d.blacklists.Check(blacklist, userID) {
		return false
	}
	if whitelist != "" && d.whitelists.Check(whitelist, userID) {
		return true
	}
	if group != "" && d.groups.Check(group, userID) {
		return true
	}
	return false
}
