package impl

// demoRecord is one pre-geocoded Seoul address used to seed fresh accounts.
// Coordinates are baked in so seeding never hits the geocoding API.
type demoRecord struct {
	name           string
	addressRaw     string
	addressDisplay string
	latitude       float64
	longitude      float64
}

var demoFriends = []demoRecord{
	{
		name:           "김민수",
		addressRaw:     "서울 용산구 한강대로 405",
		addressDisplay: "서울특별시 용산구 한강대로 405",
		latitude:       37.5547,
		longitude:      126.9707,
	},
	{
		name:           "이서연",
		addressRaw:     "서울 강남구 강남대로 396",
		addressDisplay: "서울특별시 강남구 강남대로 396",
		latitude:       37.4979,
		longitude:      127.0276,
	},
	{
		name:           "박지훈",
		addressRaw:     "서울 마포구 양화로 160",
		addressDisplay: "서울특별시 마포구 양화로 160",
		latitude:       37.5563,
		longitude:      126.9237,
	},
	{
		name:           "최유진",
		addressRaw:     "서울 송파구 올림픽로 300",
		addressDisplay: "서울특별시 송파구 올림픽로 300",
		latitude:       37.5133,
		longitude:      127.1000,
	},
	{
		name:           "정현우",
		addressRaw:     "서울 서대문구 신촌로 73",
		addressDisplay: "서울특별시 서대문구 신촌로 73",
		latitude:       37.5550,
		longitude:      126.9368,
	},
}

var demoPlaces = []demoRecord{
	{
		name:           "을지로입구역 스타벅스",
		addressRaw:     "서울 중구 을지로 65",
		addressDisplay: "서울특별시 중구 을지로 65",
		latitude:       37.5660,
		longitude:      126.9827,
	},
}
