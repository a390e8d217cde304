package blizzard

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type characterSummary struct {
	Name           string   `json:"name"`
	Level          int      `json:"level"`
	Race           namedRef `json:"race"`
	CharacterClass namedRef `json:"character_class"`
	ActiveSpec     namedRef `json:"active_spec"`
	Realm          struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"realm"`
}

type characterMedia struct {
	Assets []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"assets"`
}

type playableSpecialization struct {
	Role struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"role"`
}

type guildRoster struct {
	Members []struct {
		Rank      int `json:"rank"`
		Character struct {
			Name          string `json:"name"`
			Level         int    `json:"level"`
			PlayableClass struct {
				ID int `json:"id"`
			} `json:"playable_class"`
			Realm struct {
				Slug string `json:"slug"`
			} `json:"realm"`
		} `json:"character"`
	} `json:"members"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// classNames maps playable class ids, which is all the guild roster endpoint
// exposes for members.
var classNames = map[int]string{
	1:  "Warrior",
	2:  "Paladin",
	3:  "Hunter",
	4:  "Rogue",
	5:  "Priest",
	6:  "Death Knight",
	7:  "Shaman",
	8:  "Mage",
	9:  "Warlock",
	10: "Monk",
	11: "Druid",
	12: "Demon Hunter",
	13: "Evoker",
}
