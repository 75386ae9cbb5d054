package entity

// CachedLogo controls the negative caching strategy for external logo lookups:
//
// - Found true: the domain resolved to a logo URL and it is cached.
//
// - Found false: the domain was queried, returned a 404, and is safely cached
// as having no logo.
//
// This prevents repeated API calls for domains we already know have nothing.
type CachedLogo struct {
	Domain   string `gorm:"primaryKey"`
	URL      string
	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`
}
