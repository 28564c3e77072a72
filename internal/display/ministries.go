package display

// Ministry is a descriptive card on the resources screen. There is no signup flow for these.
type Ministry struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
}

const ministryAssetBase = "https://customer-assets.emergentagent.com/job_church-checkin-7/artifacts/"

var ministries = []Ministry{
	{
		ID:          "1",
		Name:        "Meals Ministry",
		Description: "Providing meals to those in need within our community. We prepare and deliver meals to families going through difficult times.",
		ImageURL:    ministryAssetBase + "d1hia1rh_Meals%20Ministry.avif",
	},
	{
		ID:          "2",
		Name:        "HUB Singers",
		Description: "Our choir ministry bringing worship through song. Join us as we lift our voices together in praise and worship.",
		ImageURL:    ministryAssetBase + "botpde0d_Hub%20Singers.avif",
	},
	{
		ID:          "3",
		Name:        "Music Team",
		Description: "Leading worship through music and song. If you play an instrument or love to sing, this is your place to serve.",
		ImageURL:    ministryAssetBase + "cuyuhqys_Music%20Team.avif",
	},
	{
		ID:          "4",
		Name:        "Hospitality Team",
		Description: "Creating a welcoming environment for all who visit. From greeting at the door to serving coffee, we make everyone feel at home.",
		ImageURL:    ministryAssetBase + "d32bzahf_Hospitality%20Team.avif",
	},
}

func Ministries() []Ministry {
	out := make([]Ministry, len(ministries))
	copy(out, ministries)
	return out
}
