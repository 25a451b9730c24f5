package moji

// Gitmoji is one entry of the fixed legacy "gitmoji" vocabulary. The
// table is only consulted as a fallback source when resolving
// configuration aliases; it never feeds conversions directly.
type Gitmoji struct {
	Code        string
	Glyph       string
	Description string
}

var gitmojis = []Gitmoji{
	{Code: "art", Glyph: "🎨", Description: "Improving structure / format of the code."},
	{Code: "zap", Glyph: "⚡️", Description: "Improving performance."},
	{Code: "fire", Glyph: "🔥", Description: "Removing code or files."},
	{Code: "bug", Glyph: "🐛", Description: "Fixing a bug."},
	{Code: "ambulance", Glyph: "🚑", Description: "Critical hotfix."},
	{Code: "sparkles", Glyph: "✨", Description: "Introducing new features."},
	{Code: "pencil", Glyph: "📝", Description: "Writing docs."},
	{Code: "rocket", Glyph: "🚀", Description: "Deploying stuff."},
	{Code: "lipstick", Glyph: "💄", Description: "Updating the UI and style files."},
	{Code: "tada", Glyph: "🎉", Description: "Initial commit."},
	{Code: "white_check_mark", Glyph: "✅", Description: "Updating tests."},
	{Code: "lock", Glyph: "🔒️", Description: "Fixing security issues."},
	{Code: "apple", Glyph: "🍎", Description: "Fixing something on macOS."},
	{Code: "penguin", Glyph: "🐧", Description: "Fixing something on Linux."},
	{Code: "checkered_flag", Glyph: "🏁", Description: "Fixing something on Windows."},
	{Code: "robot", Glyph: "🤖", Description: "Fixing something on Android."},
	{Code: "green_apple", Glyph: "🍏", Description: "Fixing something on iOS."},
	{Code: "bookmark", Glyph: "🔖", Description: "Releasing / Version tags."},
	{Code: "rotating_light", Glyph: "🚨", Description: "Removing linter warnings."},
	{Code: "construction", Glyph: "🚧", Description: "Work in progress."},
	{Code: "green_heart", Glyph: "💚", Description: "Fixing CI Build."},
	{Code: "arrow_down", Glyph: "⬇️", Description: "Downgrading dependencies."},
	{Code: "arrow_up", Glyph: "⬆️", Description: "Upgrading dependencies."},
	{Code: "pushpin", Glyph: "📌", Description: "Pinning dependencies to specific versions."},
	{Code: "construction_worker", Glyph: "👷", Description: "Adding CI build system."},
	{Code: "chart_with_upwards_trend", Glyph: "📈", Description: "Adding analytics or tracking code."},
	{Code: "recycle", Glyph: "♻️", Description: "Refactoring code."},
	{Code: "whale", Glyph: "🐳", Description: "Work about Docker."},
	{Code: "heavy_plus_sign", Glyph: "➕", Description: "Adding a dependency."},
	{Code: "heavy_minus_sign", Glyph: "➖", Description: "Removing a dependency."},
	{Code: "wrench", Glyph: "🔧", Description: "Changing configuration files."},
	{Code: "globe_with_meridians", Glyph: "🌐", Description: "Internationalization and localization."},
	{Code: "pencil2", Glyph: "✏️", Description: "Fixing typos."},
	{Code: "poop", Glyph: "💩", Description: "Writing bad code that needs to be improved."},
	{Code: "rewind", Glyph: "⏪", Description: "Reverting changes."},
	{Code: "twisted_rightwards_arrows", Glyph: "🔀", Description: "Merging branches."},
	{Code: "package", Glyph: "📦️", Description: "Updating compiled files or packages."},
	{Code: "alien", Glyph: "👽", Description: "Updating code due to external API changes."},
	{Code: "truck", Glyph: "🚚", Description: "Moving or renaming files."},
	{Code: "page_facing_up", Glyph: "📄", Description: "Adding or updating license."},
	{Code: "boom", Glyph: "💥", Description: "Introducing breaking changes."},
	{Code: "bento", Glyph: "🍱", Description: "Adding or updating assets."},
	{Code: "ok_hand", Glyph: "👌", Description: "Updating code due to code review changes."},
	{Code: "wheelchair", Glyph: "♿️", Description: "Improving accessibility."},
	{Code: "bulb", Glyph: "💡", Description: "Documenting source code."},
	{Code: "beers", Glyph: "🍻", Description: "Writing code drunkenly."},
	{Code: "speech_balloon", Glyph: "💬", Description: "Updating text and literals."},
	{Code: "card_file_box", Glyph: "🗃", Description: "Performing database related changes."},
	{Code: "loud_sound", Glyph: "🔊", Description: "Adding logs."},
	{Code: "mute", Glyph: "🔇", Description: "Removing logs."},
	{Code: "busts_in_silhouette", Glyph: "👥", Description: "Adding contributor(s)."},
	{Code: "children_crossing", Glyph: "🚸", Description: "Improving user experience / usability."},
	{Code: "building_construction", Glyph: "🏗", Description: "Making architectural changes."},
	{Code: "iphone", Glyph: "📱", Description: "Working on responsive design."},
	{Code: "clown_face", Glyph: "🤡", Description: "Mocking things."},
	{Code: "egg", Glyph: "🥚", Description: "Adding an easter egg."},
	{Code: "see_no_evil", Glyph: "🙈", Description: "Adding or updating a .gitignore file."},
	{Code: "camera_flash", Glyph: "📸", Description: "Adding or updating snapshots."},
	{Code: "alembic", Glyph: "⚗", Description: "Experimenting new things."},
	{Code: "mag", Glyph: "🔍", Description: "Improving SEO."},
	{Code: "wheel_of_dharma", Glyph: "☸️", Description: "Work about Kubernetes."},
	{Code: "label", Glyph: "🏷️", Description: "Adding or updating types (Flow, TypeScript)."},
	{Code: "seedling", Glyph: "🌱", Description: "Adding or updating seed files."},
	{Code: "triangular_flag_on_post", Glyph: "🚩", Description: "Adding, updating, or removing feature flags."},
	{Code: "goal_net", Glyph: "🥅", Description: "Catching errors."},
	{Code: "dizzy", Glyph: "💫", Description: "Adding or updating animations and transitions."},
	{Code: "wastebasket", Glyph: "🗑", Description: "Deprecating code that needs to be cleaned up."},
}

var gitmojiIndex = func() map[string]Gitmoji {
	m := make(map[string]Gitmoji, len(gitmojis))
	for _, g := range gitmojis {
		m[g.Code] = g
	}
	return m
}()

// LookupGitmoji returns the legacy vocabulary entry for a code.
func LookupGitmoji(code string) (Gitmoji, bool) {
	g, ok := gitmojiIndex[code]
	return g, ok
}
