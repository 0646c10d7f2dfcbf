package store

import (
	"time"

	"learnflow/models"
)

// SeedCourses returns the fixture catalog used until a real course source exists
func SeedCourses() []models.Course {
	return []models.Course{
		{
			ID:          1,
			Title:       "Complete React Development Course",
			Description: "Master React from basics to advanced concepts with hands-on projects and real-world applications.",
			Category:    "Web Development",
			Level:       models.LevelIntermediate,
			Price:       89.99,
			Rating:      4.8,
			Enrolled:    15420,
			Duration:    840,
			Instructor:  models.Instructor{ID: 1, Name: "Sarah Johnson", Title: "Senior React Developer"},
			Sections: []models.Section{
				{
					ID: 1, Title: "React Fundamentals", Duration: 180,
					Lessons: []models.Lesson{
						{ID: 1, Title: "Introduction to React", Duration: 15, VideoURL: "/videos/react-intro.mp4", Preview: true},
						{ID: 2, Title: "Components and JSX", Duration: 25, VideoURL: "/videos/components.mp4"},
						{ID: 3, Title: "Props and State", Duration: 30, VideoURL: "/videos/props-state.mp4"},
					},
				},
				{
					ID: 2, Title: "Advanced React Patterns", Duration: 220,
					Lessons: []models.Lesson{
						{ID: 4, Title: "Hooks Deep Dive", Duration: 35, VideoURL: "/videos/hooks.mp4"},
						{ID: 5, Title: "Context API", Duration: 40, VideoURL: "/videos/context.mp4"},
						{ID: 6, Title: "Performance Optimization", Duration: 45, VideoURL: "/videos/performance.mp4"},
					},
				},
			},
		},
		{
			ID:          2,
			Title:       "Python for Data Science",
			Description: "Learn Python programming with focus on data analysis, visualization, and machine learning fundamentals.",
			Category:    "Data Science",
			Level:       models.LevelBeginner,
			Price:       79.99,
			Rating:      4.6,
			Enrolled:    12350,
			Duration:    720,
			Instructor:  models.Instructor{ID: 2, Name: "Dr. Michael Chen", Title: "Data Science Professor"},
			Sections: []models.Section{
				{
					ID: 3, Title: "Python Basics", Duration: 200,
					Lessons: []models.Lesson{
						{ID: 7, Title: "Python Syntax", Duration: 20, VideoURL: "/videos/python-basics.mp4", Preview: true},
						{ID: 8, Title: "Data Types", Duration: 25, VideoURL: "/videos/data-types.mp4"},
					},
				},
			},
		},
		{
			ID:          3,
			Title:       "UI/UX Design Masterclass",
			Description: "Complete guide to user interface and user experience design with practical projects and industry insights.",
			Category:    "Design",
			Level:       models.LevelIntermediate,
			Price:       94.99,
			Rating:      4.9,
			Enrolled:    8970,
			Duration:    960,
			Instructor:  models.Instructor{ID: 3, Name: "Emily Rodriguez", Title: "Senior UX Designer"},
			Sections: []models.Section{
				{
					ID: 4, Title: "Design Principles", Duration: 180,
					Lessons: []models.Lesson{
						{ID: 9, Title: "Typography Fundamentals", Duration: 30, VideoURL: "/videos/typography.mp4", Preview: true},
						{ID: 10, Title: "Color Theory", Duration: 25, VideoURL: "/videos/color-theory.mp4"},
					},
				},
			},
		},
		{
			ID:          4,
			Title:       "Digital Marketing Strategy",
			Description: "Comprehensive digital marketing course covering SEO, social media, email marketing, and analytics.",
			Category:    "Marketing",
			Level:       models.LevelBeginner,
			Price:       69.99,
			Rating:      4.5,
			Enrolled:    11200,
			Duration:    600,
			Instructor:  models.Instructor{ID: 4, Name: "James Wilson", Title: "Marketing Director"},
			Sections: []models.Section{
				{
					ID: 5, Title: "Marketing Fundamentals", Duration: 150,
					Lessons: []models.Lesson{
						{ID: 11, Title: "Digital Marketing Overview", Duration: 20, VideoURL: "/videos/marketing-intro.mp4", Preview: true},
						{ID: 12, Title: "Target Audience Analysis", Duration: 30, VideoURL: "/videos/audience.mp4"},
					},
				},
			},
		},
		{
			ID:          5,
			Title:       "Business Analytics with Excel",
			Description: "Master business data analysis using Excel with advanced formulas, pivot tables, and visualization techniques.",
			Category:    "Business",
			Level:       models.LevelIntermediate,
			Price:       59.99,
			Rating:      4.4,
			Enrolled:    9850,
			Duration:    480,
			Instructor:  models.Instructor{ID: 5, Name: "Lisa Thompson", Title: "Business Analyst"},
			Sections: []models.Section{
				{
					ID: 6, Title: "Excel Fundamentals", Duration: 120,
					Lessons: []models.Lesson{
						{ID: 13, Title: "Excel Interface", Duration: 15, VideoURL: "/videos/excel-basics.mp4", Preview: true},
						{ID: 14, Title: "Formulas and Functions", Duration: 35, VideoURL: "/videos/formulas.mp4"},
					},
				},
			},
		},
		{
			ID:          6,
			Title:       "Professional Photography",
			Description: "Learn professional photography techniques, composition, lighting, and post-processing with expert guidance.",
			Category:    "Photography",
			Level:       models.LevelAdvanced,
			Price:       129.99,
			Rating:      4.7,
			Enrolled:    6720,
			Duration:    1080,
			Instructor:  models.Instructor{ID: 6, Name: "Alexander Kim", Title: "Professional Photographer"},
			Sections: []models.Section{
				{
					ID: 7, Title: "Camera Fundamentals", Duration: 200,
					Lessons: []models.Lesson{
						{ID: 15, Title: "Camera Settings", Duration: 25, VideoURL: "/videos/camera-settings.mp4", Preview: true},
						{ID: 16, Title: "Composition Rules", Duration: 30, VideoURL: "/videos/composition.mp4"},
					},
				},
			},
		},
	}
}

// SeedEnrollments returns fixture enrollments for the demo user
func SeedEnrollments() []models.Enrollment {
	courses := SeedCourses()
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	currentLesson := func(id uint) *uint { return &id }
	return []models.Enrollment{
		{
			ID:               1,
			UserID:           1,
			CourseID:         1,
			Course:           courses[0].Snapshot(),
			EnrolledDate:     date("2024-01-01"),
			LastAccessed:     date("2024-01-20"),
			Progress:         75,
			CompletedLessons: []uint{1, 2, 3, 4, 5},
			CurrentLesson:    currentLesson(6),
			TimeSpent:        420,
		},
		{
			ID:               2,
			UserID:           1,
			CourseID:         2,
			Course:           courses[1].Snapshot(),
			EnrolledDate:     date("2024-01-15"),
			LastAccessed:     date("2024-01-18"),
			Progress:         30,
			CompletedLessons: []uint{7, 8},
			CurrentLesson:    currentLesson(9),
			TimeSpent:        180,
		},
		{
			ID:                3,
			UserID:            1,
			CourseID:          3,
			Course:            courses[2].Snapshot(),
			EnrolledDate:      date("2023-12-20"),
			LastAccessed:      date("2024-01-22"),
			Progress:          100,
			CompletedLessons:  []uint{9, 10, 11, 12, 13, 14, 15, 16},
			CertificateEarned: true,
			TimeSpent:         960,
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{ID: 1, UserID: 1, UserName: "John Doe", Rating: 5, Comment: "Excellent course! Very comprehensive and well-structured.", Date: "2024-01-15", Helpful: 24},
		{ID: 2, UserID: 2, UserName: "Jane Smith", Rating: 4, Comment: "Great content, but could use more practical examples.", Date: "2024-01-10", Helpful: 12},
		{ID: 3, UserID: 3, UserName: "Mike Johnson", Rating: 5, Comment: "Perfect for beginners. Highly recommended!", Date: "2024-01-08", Helpful: 18},
	}
}
