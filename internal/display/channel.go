package display

import "fmt"

const YouTubeChannelURL = "https://www.youtube.com/@highfieldscommunitychurch3628"

// ChannelLink is one of the quick-access links on the sermons screen.
type ChannelLink int

const (
	LinkChannel ChannelLink = iota
	LinkVideos
	LinkStreams
	LinkPlaylists
	LinkSubscribe
)

type channelLink struct {
	title    string
	subtitle string
	path     string
}

var channelLinks = map[ChannelLink]channelLink{
	LinkChannel:   {title: "Watch on YouTube", subtitle: "Highfields Community Church", path: ""},
	LinkVideos:    {title: "All Videos", subtitle: "Browse all our sermon recordings", path: "/videos"},
	LinkStreams:   {title: "Live Stream", subtitle: "Watch our services live on Sundays", path: "/streams"},
	LinkPlaylists: {title: "Sermon Series", subtitle: "Watch complete sermon series", path: "/playlists"},
	LinkSubscribe: {title: "Subscribe", subtitle: "Never Miss a Sermon", path: "?sub_confirmation=1"},
}

func ChannelLinks() []ChannelLink {
	return []ChannelLink{LinkChannel, LinkVideos, LinkStreams, LinkPlaylists, LinkSubscribe}
}

// URL panics on a ChannelLink outside the declared constants, as do Title and Subtitle.
func (l ChannelLink) URL() string {
	return YouTubeChannelURL + l.link().path
}

func (l ChannelLink) Title() string {
	return l.link().title
}

func (l ChannelLink) Subtitle() string {
	return l.link().subtitle
}

func (l ChannelLink) link() channelLink {
	link, ok := channelLinks[l]
	if !ok {
		panic(fmt.Sprintf("display: invalid %s", l))
	}
	return link
}

func (l ChannelLink) String() string {
	if _, ok := channelLinks[l]; !ok {
		return fmt.Sprintf("ChannelLink(%d)", int(l))
	}
	return channelLinks[l].title
}
