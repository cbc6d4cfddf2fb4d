package db

// SeedActivity is one entry of the bootstrap catalog.
type SeedActivity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants *int
	Category        *string
	Participants    []string
}

var (
	catTechnical    = strp("technical")
	catNonTechnical = strp("non-technical")
	catSports       = strp("sports")
)

func maxOf(n int) *int { return &n }

func strp(s string) *string { return &s }

// MergingtonCatalog is the Mergington High School activity list loaded into
// an empty database. Several activities have no category on purpose.
var MergingtonCatalog = []SeedActivity{
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: maxOf(20),
		Category:        catTechnical,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Robotics Club",
		Description:     "Build and program robots for competitions",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(18),
		Participants:    []string{"alex@mergington.edu", "lucas@mergington.edu"},
	},
	{
		Name:            "Web Development Workshop",
		Description:     "Learn HTML, CSS, and JavaScript to build websites",
		Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
		MaxParticipants: maxOf(16),
		Participants:    []string{"jordan@mergington.edu"},
	},
	{
		Name:            "AI and Machine Learning Club",
		Description:     "Explore artificial intelligence and machine learning applications",
		Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(15),
		Participants:    []string{"maya@mergington.edu", "ryan@mergington.edu"},
	},
	{
		Name:            "Cybersecurity Club",
		Description:     "Learn about cybersecurity, hacking prevention, and ethical hacking",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(12),
		Participants:    []string{"tyler@mergington.edu"},
	},
	{
		Name:            "Game Development Club",
		Description:     "Create games using game engines like Unity or Unreal",
		Schedule:        "Tuesdays, 4:30 PM - 6:00 PM",
		MaxParticipants: maxOf(14),
		Participants:    []string{"mason@mergington.edu", "ethan@mergington.edu"},
	},
	{
		Name:            "Data Science Club",
		Description:     "Analyze data and create visualizations using Python",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(12),
		Participants:    []string{"zoe@mergington.edu"},
	},
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(12),
		Category:        catNonTechnical,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Art Club",
		Description:     "Explore your creativity through painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(15),
		Category:        catNonTechnical,
		Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
	},
	{
		Name:            "Drama Club",
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(20),
		Category:        catNonTechnical,
		Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
	},
	{
		Name:            "Math Club",
		Description:     "Solve challenging problems and participate in math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: maxOf(10),
		Category:        catNonTechnical,
		Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(12),
		Category:        catNonTechnical,
		Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
	},
	{
		Name:            "Music Band",
		Description:     "Play musical instruments and perform at school events",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
		MaxParticipants: maxOf(25),
		Participants:    []string{"grace@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Choir",
		Description:     "Sing together and perform at concerts",
		Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: maxOf(30),
		Participants:    []string{"isabella@mergington.edu", "victoria@mergington.edu"},
	},
	{
		Name:            "Photography Club",
		Description:     "Learn photography techniques and exhibit your work",
		Schedule:        "Saturdays, 2:00 PM - 4:00 PM",
		MaxParticipants: maxOf(12),
		Participants:    []string{"lucas@mergington.edu"},
	},
	{
		Name:            "Model United Nations",
		Description:     "Debate global issues and represent countries in mock UN sessions",
		Schedule:        "Mondays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(20),
		Participants:    []string{"nathan@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Science Club",
		Description:     "Conduct experiments and explore scientific concepts",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(16),
		Participants:    []string{"marcus@mergington.edu"},
	},
	{
		Name:            "Soccer Team",
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(22),
		Category:        catSports,
		Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
	},
	{
		Name:            "Basketball Team",
		Description:     "Practice and play basketball with the school team",
		Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(15),
		Category:        catSports,
		Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: maxOf(30),
		Category:        catSports,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Football Team",
		Description:     "Play American football and compete in league matches",
		Schedule:        "Mondays, Wednesdays, Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(25),
		Participants:    []string{"marcus@mergington.edu", "tyler@mergington.edu"},
	},
	{
		Name:            "Volleyball Team",
		Description:     "Learn volleyball skills and compete against other schools",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: maxOf(14),
		Participants:    []string{"jessica@mergington.edu", "emily@mergington.edu"},
	},
	{
		Name:            "Tennis Team",
		Description:     "Master tennis skills and participate in tournaments",
		Schedule:        "Mondays and Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: maxOf(12),
		Participants:    []string{"andrew@mergington.edu"},
	},
	{
		Name:            "Track and Field",
		Description:     "Run, jump, and throw to compete in track events",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
		MaxParticipants: maxOf(20),
		Participants:    []string{"jessica@mergington.edu", "david@mergington.edu"},
	},
	{
		Name:            "Swimming Team",
		Description:     "Swim competitively and improve your technique",
		Schedule:        "Mondays, Wednesdays, Fridays, 3:30 PM - 4:30 PM",
		MaxParticipants: maxOf(16),
		Participants:    []string{"sophia@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Badminton Club",
		Description:     "Play badminton recreationally and competitively",
		Schedule:        "Saturdays, 2:00 PM - 4:00 PM",
		MaxParticipants: maxOf(10),
		Participants:    []string{"kevin@mergington.edu"},
	},
	{
		Name:            "Martial Arts Club",
		Description:     "Learn karate, taekwondo, and self-defense techniques",
		Schedule:        "Thursdays and Saturdays, 5:00 PM - 6:30 PM",
		MaxParticipants: maxOf(18),
		Participants:    []string{"christopher@mergington.edu", "jacob@mergington.edu"},
	},
}
