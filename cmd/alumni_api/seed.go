package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/alumni-connect/internal/config"
	"github.com/jonathan/alumni-connect/internal/db"
	"github.com/jonathan/alumni-connect/internal/observability"
	"github.com/spf13/cobra"
)

var (
	seedVerbose  bool
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample alumni profiles",
	Long:  `Insert sample alumni profiles with map coordinates into the database. Existing profiles with the same email are updated in place.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "Print a summary of the seeded profiles")
	seedCmd.Flags().StringVar(&seedPassword, "password", "password123", "Password assigned to every seed account")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	passwordHash, err := passwordConfig.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := sampleAlumni()
	seeded := make([]db.User, 0, len(users))
	for i := range users {
		u := &users[i]
		u.PasswordHash = passwordHash
		u.PasswordSet = true

		id, err := database.UpsertSeedUser(ctx, u)
		if err != nil {
			log.Printf("[seed] skipped %s: %v", u.Name, err)
			continue
		}
		u.ID = id
		seeded = append(seeded, *u)
		log.Printf("[seed] upserted %s (%s)", u.Name, u.Location)
	}

	log.Printf("[seed] seeded %d alumni profiles", len(seeded))

	if seedVerbose {
		observability.NewPrinter(os.Stdout).PrintSeededAlumni(seeded)
	}

	return nil
}

func coord(v float64) *float64 {
	return &v
}

// sampleAlumni returns the seed profiles shown on the alumni map and in the
// spotlight carousel.
func sampleAlumni() []db.User {
	return []db.User{
		{
			Name:            "Priya Sharma",
			Email:           "priya.sharma@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2018,
			Course:          "Computer Science",
			CurrentPosition: "Senior Software Engineer",
			Company:         "Google",
			City:            "Bangalore",
			Country:         "India",
			Location:        "Bangalore, India",
			Latitude:        coord(12.9716),
			Longitude:       coord(77.5946),
			Bio:             "Passionate about AI and machine learning. Leading a team of engineers building next-gen search algorithms.",
			Skills:          db.StringArray{"Python", "Machine Learning", "TensorFlow", "Cloud Computing"},
			Interests:       db.StringArray{"AI", "Open Source", "Mentoring"},
			LinkedIn:        "https://linkedin.com/in/priyasharma",
			IsFeatured:      true,
			Achievements:    db.StringArray{"Google Cloud Innovator", "Tech Speaker", "Open Source Contributor"},
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
		},
		{
			Name:            "Rahul Mehta",
			Email:           "rahul.mehta@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2015,
			Course:          "Information Technology",
			CurrentPosition: "VP of Engineering",
			Company:         "Microsoft",
			City:            "Seattle",
			Country:         "USA",
			Location:        "Seattle, USA",
			Latitude:        coord(47.6062),
			Longitude:       coord(-122.3321),
			Bio:             "Building cloud infrastructure at scale. Former startup founder, now helping Microsoft innovate in cloud computing.",
			Skills:          db.StringArray{"Azure", "Distributed Systems", "Leadership", "Architecture"},
			Interests:       db.StringArray{"Cloud Computing", "Startups", "Basketball"},
			LinkedIn:        "https://linkedin.com/in/rahulmehta",
			GitHub:          "https://github.com/rahulmehta",
			IsFeatured:      true,
			Achievements:    db.StringArray{"Microsoft MVP", "TEDx Speaker", "Startup Exit"},
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Rahul",
		},
		{
			Name:            "Ananya Patel",
			Email:           "ananya.patel@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2019,
			Course:          "Data Science",
			CurrentPosition: "Lead Data Scientist",
			Company:         "Amazon",
			City:            "Mumbai",
			Country:         "India",
			Location:        "Mumbai, India",
			Latitude:        coord(19.0760),
			Longitude:       coord(72.8777),
			Bio:             "Transforming business decisions with data. Specialized in recommendation systems and personalization.",
			Skills:          db.StringArray{"Python", "R", "Deep Learning", "Big Data", "Analytics"},
			Interests:       db.StringArray{"Data Science", "Women in Tech", "Teaching"},
			LinkedIn:        "https://linkedin.com/in/ananyapatel",
			IsFeatured:      true,
			Achievements:    db.StringArray{"Kaggle Master", "Women in Tech Award", "Published Researcher"},
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Ananya",
		},
		{
			Name:            "Vikram Singh",
			Email:           "vikram.singh@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2017,
			Course:          "Software Engineering",
			CurrentPosition: "Principal Engineer",
			Company:         "Meta",
			City:            "London",
			Country:         "UK",
			Location:        "London, UK",
			Latitude:        coord(51.5074),
			Longitude:       coord(-0.1278),
			Bio:             "Building the future of social connectivity. Expert in distributed systems and real-time communication.",
			Skills:          db.StringArray{"React", "Node.js", "GraphQL", "System Design"},
			Interests:       db.StringArray{"Web Development", "Travel", "Photography"},
			LinkedIn:        "https://linkedin.com/in/vikramsingh",
			GitHub:          "https://github.com/vikramsingh",
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Vikram",
		},
		{
			Name:            "Sarah Johnson",
			Email:           "sarah.johnson@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2016,
			Course:          "Computer Engineering",
			CurrentPosition: "Engineering Manager",
			Company:         "Apple",
			City:            "San Francisco",
			Country:         "USA",
			Location:        "San Francisco, USA",
			Latitude:        coord(37.7749),
			Longitude:       coord(-122.4194),
			Bio:             "Leading teams to build innovative products. Passionate about creating seamless user experiences.",
			Skills:          db.StringArray{"iOS Development", "Swift", "Team Leadership", "Product Management"},
			Interests:       db.StringArray{"Mobile Development", "Design", "Fitness"},
			LinkedIn:        "https://linkedin.com/in/sarahjohnson",
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
		},
		{
			Name:            "Arjun Reddy",
			Email:           "arjun.reddy@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2020,
			Course:          "Artificial Intelligence",
			CurrentPosition: "ML Research Scientist",
			Company:         "DeepMind",
			City:            "Singapore",
			Country:         "Singapore",
			Location:        "Singapore",
			Latitude:        coord(1.3521),
			Longitude:       coord(103.8198),
			Bio:             "Researching the frontiers of artificial intelligence. Published multiple papers on reinforcement learning.",
			Skills:          db.StringArray{"PyTorch", "Research", "Reinforcement Learning", "Computer Vision"},
			Interests:       db.StringArray{"AI Research", "Chess", "Reading"},
			LinkedIn:        "https://linkedin.com/in/arjunreddy",
			GitHub:          "https://github.com/arjunreddy",
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Arjun",
		},
		{
			Name:            "Emily Chen",
			Email:           "emily.chen@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2014,
			Course:          "Computer Science",
			CurrentPosition: "CTO",
			Company:         "TechStartup Inc",
			City:            "Tokyo",
			Country:         "Japan",
			Location:        "Tokyo, Japan",
			Latitude:        coord(35.6762),
			Longitude:       coord(139.6503),
			Bio:             "Serial entrepreneur and tech leader. Building innovative solutions for the future of work.",
			Skills:          db.StringArray{"Full Stack", "Leadership", "Product Strategy", "DevOps"},
			Interests:       db.StringArray{"Startups", "Innovation", "Anime"},
			LinkedIn:        "https://linkedin.com/in/emilychen",
			GitHub:          "https://github.com/emilychen",
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
		},
		{
			Name:            "Amit Kumar",
			Email:           "amit.kumar@example.com",
			Role:            db.RoleAlumni,
			GraduationYear:  2021,
			Course:          "Cybersecurity",
			CurrentPosition: "Security Engineer",
			Company:         "Cisco",
			City:            "Hyderabad",
			Country:         "India",
			Location:        "Hyderabad, India",
			Latitude:        coord(17.3850),
			Longitude:       coord(78.4867),
			Bio:             "Protecting digital infrastructure from emerging threats. Ethical hacker and security researcher.",
			Skills:          db.StringArray{"Network Security", "Penetration Testing", "Cryptography", "Compliance"},
			Interests:       db.StringArray{"Cybersecurity", "CTF Competitions", "Gaming"},
			LinkedIn:        "https://linkedin.com/in/amitkumar",
			AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Amit",
		},
	}
}
