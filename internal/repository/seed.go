package repository

import "governance-service/internal/models"

// seed loads the national demo data set the dashboard ships with. Totals and
// entities match the published fiscal-year figures used across the demo.
func (s *MemoryStore) seed() {
	s.stats = models.NationalStats{
		TotalBudget:       150_000_000_000,
		AllocatedBudget:   100_000_000_000,
		SpentBudget:       45_000_000_000,
		TotalProjects:     1247,
		CompletedProjects: 342,
		OngoingProjects:   765,
		DelayedProjects:   140,
		TotalContractors:  523,
		Provinces:         7,
		LocalUnits:        753,
	}

	s.projects = []models.Project{
		{
			ID:          "1",
			Title:       "Kathmandu-Terai Fast Track",
			Description: "High-speed highway connecting Kathmandu to southern plains",
			Budget:      45_000_000_000,
			Size:        models.SizeLarge,
			CreatedBy:   models.LevelCentral,
			SpentAmount: 28_000_000_000,
			Status:      models.ProjectInProgress,
			Priority:    models.PriorityHigh,
			Province:    "Bagmati",
			LocalUnit:   "Multiple Districts",
			Progress:    62,
			StartDate:   "2021-01-15",
			EndDate:     "2025-12-31",
			Contractor: &models.ContractorInfo{
				ID: "c1", Name: "Ram Kumar Shrestha", Company: "Nepal Infrastructure Corp", Rating: 4.5,
			},
		},
		{
			ID:          "2",
			Title:       "Pokhara International Airport",
			Description: "International airport development project",
			Budget:      25_000_000_000,
			Size:        models.SizeLarge,
			CreatedBy:   models.LevelCentral,
			SpentAmount: 25_000_000_000,
			Status:      models.ProjectCompleted,
			Priority:    models.PriorityHigh,
			Province:    "Gandaki",
			LocalUnit:   "Pokhara Metropolitan",
			Progress:    100,
			StartDate:   "2016-04-01",
			EndDate:     "2023-01-01",
			Contractor: &models.ContractorInfo{
				ID: "c2", Name: "Sita Devi Tamang", Company: "China CAMC Engineering", Rating: 4.2,
			},
		},
		{
			ID:          "3",
			Title:       "Melamchi Water Supply Phase 2",
			Description: "Expansion of Melamchi water supply to additional areas",
			Budget:      8_000_000_000,
			Size:        models.SizeMedium,
			CreatedBy:   models.LevelCentral,
			SpentAmount: 3_200_000_000,
			Status:      models.ProjectInProgress,
			Priority:    models.PriorityHigh,
			Province:    "Bagmati",
			LocalUnit:   "Kathmandu Valley",
			Progress:    40,
			StartDate:   "2022-06-01",
			EndDate:     "2026-06-01",
			Contractor: &models.ContractorInfo{
				ID: "c3", Name: "Hari Prasad Gautam", Company: "Sino Hydro Nepal", Rating: 4.0,
			},
		},
	}

	s.allocations = []models.BudgetAllocation{
		{
			ID: "1", Recipient: "Bagmati Province", RecipientType: models.RecipientProvince,
			Amount: 50_000_000_000, Purpose: "Infrastructure Development",
			Status: models.AllocationAllocated, FiscalYear: "2080/81",
			AllocatedDate: "2023-07-16", AllocatedBy: "admin",
		},
		{
			ID: "2", Recipient: "Kathmandu Metropolitan", RecipientType: models.RecipientLocalUnit,
			Amount: 5_000_000_000, Purpose: "Urban Development",
			Status: models.AllocationAllocated, FiscalYear: "2080/81",
			AllocatedDate: "2023-07-20", AllocatedBy: "admin",
		},
		{
			ID: "3", Recipient: "Gandaki Province", RecipientType: models.RecipientProvince,
			Amount: 25_000_000_000, Purpose: "Road Infrastructure",
			Status: models.AllocationAllocated, FiscalYear: "2080/81",
			AllocatedDate: "2023-08-01", AllocatedBy: "admin",
		},
	}

	s.policies = []models.PolicyDecision{
		{
			ID: "1", Title: "National Road Safety Policy 2080",
			Description: "Comprehensive policy for improving road safety standards across all infrastructure projects",
			Category:    "INFRASTRUCTURE", Status: models.PolicyPending,
			ProposedBy: "Ministry of Infrastructure", ProposedDate: "2023-10-15",
			Impact: "All road construction projects nationwide",
		},
		{
			ID: "2", Title: "Green Building Standards 2080",
			Description: "Mandatory environmental standards for all new government buildings",
			Category:    "ENVIRONMENT", Status: models.PolicyPending,
			ProposedBy: "Ministry of Environment", ProposedDate: "2023-11-01",
			Impact: "All government building projects",
		},
		{
			ID: "3", Title: "Digital Infrastructure Policy",
			Description: "Policy for mandatory digital systems in all infrastructure monitoring",
			Category:    "TECHNOLOGY", Status: models.PolicyApproved,
			ProposedBy: "Ministry of Communications", ProposedDate: "2023-09-01",
			Impact:    "All new infrastructure projects",
			DecidedBy: "PM Office", DecidedDate: "2023-10-01",
		},
	}

	s.payments = []models.PaymentRequest{
		{
			ID: "1", ProjectID: "1", ProjectName: "Kathmandu-Terai Fast Track",
			Requester: "Bagmati Province", Amount: 500_000_000,
			Purpose: "Phase 3 Construction Materials",
			Status:  models.PaymentPending, RequestDate: "2024-01-10",
		},
		{
			ID: "2", ProjectID: "3", ProjectName: "Melamchi Water Supply Phase 2",
			Requester: "Kathmandu Metropolitan", Amount: 200_000_000,
			Purpose: "Pipeline Installation",
			Status:  models.PaymentPending, RequestDate: "2024-01-15",
		},
	}

	s.contractors = []models.Contractor{
		{
			ID: "c1", Name: "Ram Kumar Shrestha", Company: "Nepal Infrastructure Corp",
			Email: "ram@nepinfra.com", Phone: "+977-1-4444444", Rating: 4.5,
			CompletedProjects: 15, OngoingProjects: 3,
			Specialization: "Road Construction", Verified: true, RegisteredDate: "2018-01-15",
		},
		{
			ID: "c2", Name: "Sita Devi Tamang", Company: "Himalayan Builders",
			Email: "sita@himalayan.com", Phone: "+977-1-5555555", Rating: 4.2,
			CompletedProjects: 22, OngoingProjects: 5,
			Specialization: "Building Construction", Verified: true, RegisteredDate: "2015-06-20",
		},
		{
			ID: "c3", Name: "Hari Prasad Gautam", Company: "Nepal Construction Group",
			Email: "hari@ncg.com", Phone: "+977-1-6666666", Rating: 4.0,
			CompletedProjects: 8, OngoingProjects: 2,
			Specialization: "Water Supply", Verified: true, RegisteredDate: "2020-03-10",
		},
	}

	s.quality = []models.QualityReport{
		{
			ID: "qr1", ProjectID: "1", ProjectName: "Kathmandu-Terai Fast Track",
			InspectorName: "Er. Krishna Sharma", InspectionDate: "2024-01-05",
			Status:   models.QualityPassed,
			Findings: "Road base construction meets standards. Proper drainage systems installed.",
			Recommendations: "Continue monitoring during monsoon season.",
		},
		{
			ID: "qr2", ProjectID: "3", ProjectName: "Melamchi Water Supply Phase 2",
			InspectorName: "Er. Maya Rai", InspectionDate: "2024-01-08",
			Status:   models.QualityNeedsImprovement,
			Findings: "Some pipeline joints need reinforcement.",
			Recommendations: "Re-inspect joints before pressure testing.",
		},
	}

	s.provinceStats = []models.ProvinceStats{
		{Name: "Koshi", Projects: 156, Utilization: 65, Completion: 42, Budget: 15_000_000_000, Spent: 9_750_000_000},
		{Name: "Madhesh", Projects: 189, Utilization: 58, Completion: 35, Budget: 18_000_000_000, Spent: 10_440_000_000},
		{Name: "Bagmati", Projects: 245, Utilization: 72, Completion: 48, Budget: 30_000_000_000, Spent: 21_600_000_000},
		{Name: "Gandaki", Projects: 134, Utilization: 61, Completion: 39, Budget: 12_000_000_000, Spent: 7_320_000_000},
		{Name: "Lumbini", Projects: 178, Utilization: 55, Completion: 32, Budget: 16_000_000_000, Spent: 8_800_000_000},
		{Name: "Karnali", Projects: 98, Utilization: 48, Completion: 28, Budget: 10_000_000_000, Spent: 4_800_000_000},
		{Name: "Sudurpashchim", Projects: 112, Utilization: 52, Completion: 31, Budget: 11_000_000_000, Spent: 5_720_000_000},
	}
}
