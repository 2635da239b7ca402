package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"placewise/internal/models"
	"placewise/internal/store"
)

// seedBusinesses is the mapped business dataset for Brgy. Sta. Cruz,
// Santa Maria, Bulacan.
var seedBusinesses = []models.Business{
	{BusinessID: 1, BusinessName: "SANTA MARIA 888 Hardware & CONSTRUCTION SUPPLIES", Category: "Hardware", Latitude: 14.83326, Longitude: 120.95468, Street: "Gulod St.", ZoneType: "Commercial"},
	{BusinessID: 2, BusinessName: "VK Cafe", Category: "Cafe", Latitude: 14.83335, Longitude: 120.95478, Street: "Gulod St.", ZoneType: "Commercial"},
	{BusinessID: 3, BusinessName: "Reymalyn Loading Station", Category: "Retail", Latitude: 14.8333, Longitude: 120.95497, Street: "Gulod St.", ZoneType: "Commercial"},
	{BusinessID: 4, BusinessName: "Nanay Mercy & KMS Carwash", Category: "Services", Latitude: 14.8336, Longitude: 120.95501, Street: "Gulod St.", ZoneType: "Commercial"},
	{BusinessID: 5, BusinessName: "BIGOTE'S MANIHAN", Category: "Restaurant", Latitude: 14.83397, Longitude: 120.95488, Street: "Gulod St.", ZoneType: "Commercial"},
	{BusinessID: 6, BusinessName: "Dau Motorcycle Shop", Category: "Services", Latitude: 14.83471, Longitude: 120.96503, Street: "Luwasan St.", ZoneType: "Commercial"},
	{BusinessID: 7, BusinessName: "EDANOZO FURNITURE", Category: "Furniture Store", Latitude: 14.83463, Longitude: 120.95514, Street: "Luwasan St.", ZoneType: "Commercial"},
	{BusinessID: 8, BusinessName: "Dalen's Store", Category: "Retail", Latitude: 14.83477, Longitude: 120.95515, Street: "Luwasan St.", ZoneType: "Commercial"},
	{BusinessID: 9, BusinessName: "Heteroza Pizza Pasta Frappe A.T.B.", Category: "Restaurant", Latitude: 14.83486, Longitude: 120.95501, Street: "Luwasan St.", ZoneType: "Commercial"},
	{BusinessID: 10, BusinessName: "Mr. BREWSKO", Category: "Cafe", Latitude: 14.83515, Longitude: 120.9551, Street: "Luwasan St.", ZoneType: "Commercial"},
	{BusinessID: 11, BusinessName: "Xyreel's Store", Category: "Retail", Latitude: 14.83558, Longitude: 120.95525, Street: "Centro St.", ZoneType: "Commercial"},
	{BusinessID: 12, BusinessName: "Centro Eatery", Category: "Restaurant", Latitude: 14.83574, Longitude: 120.95533, Street: "Centro St.", ZoneType: "Commercial"},
	{BusinessID: 13, BusinessName: "KAF Pharmacy - STA. CRUZ BRANCH", Category: "Pharmacy", Latitude: 14.83591, Longitude: 120.95561, Street: "Centro St.", ZoneType: "Commercial"},
	{BusinessID: 14, BusinessName: "HAIRCHITECT BARBERSHOP", Category: "Services", Latitude: 14.83619, Longitude: 120.95581, Street: "Centro St.", ZoneType: "Commercial"},
	{BusinessID: 15, BusinessName: "R.C.S. MINI MART", Category: "Retail", Latitude: 14.83656, Longitude: 120.9552, Street: "Centro St.", ZoneType: "Commercial"},
	{BusinessID: 16, BusinessName: "SnJ Food Hub", Category: "Restaurant", Latitude: 14.8374, Longitude: 120.95592, Street: "Pag-asa St.", ZoneType: "Commercial"},
	{BusinessID: 17, BusinessName: "Casa David Private Resort", Category: "Resort", Latitude: 14.83736, Longitude: 120.95666, Street: "Pag-asa St.", ZoneType: "Commercial"},
	{BusinessID: 18, BusinessName: "D.C. Marianoz Hardware and Construction Supplies", Category: "Hardware", Latitude: 14.83752, Longitude: 120.95728, Street: "Pag-asa St.", ZoneType: "Residential"},
	{BusinessID: 19, BusinessName: "Shewate Beverages Trading", Category: "Retail", Latitude: 14.83727, Longitude: 120.95581, Street: "Pag-asa St.", ZoneType: "Commercial"},
	{BusinessID: 20, BusinessName: "JayJays Peanut butter", Category: "Retail", Latitude: 14.83671, Longitude: 120.95762, Street: "Pag-asa St.", ZoneType: "Residential"},
	{BusinessID: 21, BusinessName: "Idols Sizzlingan Atbp.", Category: "Restaurant", Latitude: 14.83763, Longitude: 120.95888, Street: "Bukid St.", ZoneType: "Commercial"},
	{BusinessID: 22, BusinessName: "JWNs Talipapa & Sari Sari Store", Category: "Retail", Latitude: 14.83763, Longitude: 120.9582, Street: "Bukid St.", ZoneType: "Commercial"},
	{BusinessID: 23, BusinessName: "BigBrew Sta. Cruz - Sta. Maria Bulacan", Category: "Cafe", Latitude: 14.83779, Longitude: 120.96005, Street: "Bukid St.", ZoneType: "Commercial"},
	{BusinessID: 24, BusinessName: "Kambal Inasal", Category: "Restaurant", Latitude: 14.83767, Longitude: 120.96001, Street: "Bukid St.", ZoneType: "Commercial"},
	{BusinessID: 25, BusinessName: "Crystal World", Category: "Services", Latitude: 14.83768, Longitude: 120.96035, Street: "Bukid St.", ZoneType: "Residential"},
	{BusinessID: 26, BusinessName: "Boss kleng vape shop", Category: "Retail", Latitude: 14.83448, Longitude: 120.96379, Street: "Matahimik St.", ZoneType: "Residential"},
	{BusinessID: 27, BusinessName: "Santa Cruz Bully Kennel", Category: "Pet Store", Latitude: 14.83491, Longitude: 120.96222, Street: "Matahimik St.", ZoneType: "Commercial"},
	{BusinessID: 28, BusinessName: "Sta Cruz 888 Metal Trading and Motor Parts", Category: "Services", Latitude: 14.83491, Longitude: 120.96183, Street: "Matahimik St.", ZoneType: "Residential"},
	{BusinessID: 29, BusinessName: "MNM Frozen Meat Trading", Category: "Retail", Latitude: 14.83486, Longitude: 120.96158, Street: "Maunlad St.", ZoneType: "Commercial"},
	{BusinessID: 30, BusinessName: "DM' Food Hub/Double D' Brew", Category: "Cafe", Latitude: 14.83478, Longitude: 120.9616, Street: "Maunlad St.", ZoneType: "Commercial"},
	{BusinessID: 31, BusinessName: "Cornelio LPG Store", Category: "Retail", Latitude: 14.83557, Longitude: 120.95974, Street: "Maunlad St.", ZoneType: "Residential"},
	{BusinessID: 32, BusinessName: "ML Photography Studio", Category: "Services", Latitude: 14.83323, Longitude: 120.95969, Street: "Maligaya St.", ZoneType: "Residential"},
	{BusinessID: 33, BusinessName: "Mg Events Catering Services", Category: "Services", Latitude: 14.83347, Longitude: 120.95886, Street: "Maligaya St.", ZoneType: "Residential"},
	{BusinessID: 34, BusinessName: "LOLET'S", Category: "Restaurant", Latitude: 14.83197, Longitude: 120.9625, Street: "Mapayapa St.", ZoneType: "Commercial"},
	{BusinessID: 35, BusinessName: "JLM's STORE", Category: "Retail", Latitude: 14.83183, Longitude: 120.96242, Street: "Mapayapa St.", ZoneType: "Residential"},
	{BusinessID: 36, BusinessName: "Nessies Store", Category: "Retail", Latitude: 14.83178, Longitude: 120.96252, Street: "Mapayapa St.", ZoneType: "Residential"},
	{BusinessID: 37, BusinessName: "Blaszas Eatery", Category: "Restaurant", Latitude: 14.83185, Longitude: 120.96281, Street: "Mapayapa St.", ZoneType: "Commercial"},
	{BusinessID: 38, BusinessName: "Sabon Depot Dealer", Category: "Retail", Latitude: 14.83106, Longitude: 120.96306, Street: "Mapayapa St.", ZoneType: "Commercial"},
	{BusinessID: 39, BusinessName: "RAYMOND PHONE REPAIR AND CCTV", Category: "Services", Latitude: 14.83713, Longitude: 120.95015, Street: "Sonoma Residences", ZoneType: "Residential"},
	{BusinessID: 40, BusinessName: "JK' Rebonding and Cellphone Supply Store", Category: "Services", Latitude: 14.83735, Longitude: 120.9505, Street: "Sonoma Residences", ZoneType: "Residential"},
	{BusinessID: 41, BusinessName: "MELANIO FARM FRESH EGGS - WHOLESALE AND RETAIL", Category: "Retail", Latitude: 14.83785, Longitude: 120.95023, Street: "Sonoma Residences", ZoneType: "Residential"},
	{BusinessID: 42, BusinessName: "Garage Gym", Category: "Services", Latitude: 14.83868, Longitude: 120.9508, Street: "Sonoma Residences", ZoneType: "Residential"},
	{BusinessID: 43, BusinessName: "BNC STORE", Category: "Retail", Latitude: 14.8373, Longitude: 120.95092, Street: "Sonoma Residences", ZoneType: "Residential"},
	{BusinessID: 44, BusinessName: "Vicky's Cakes and Pastries", Category: "Bakery", Latitude: 14.83802, Longitude: 120.95583, Street: "Housing Project", ZoneType: "Commercial"},
	{BusinessID: 45, BusinessName: "YANI'S LECHON MANOK", Category: "Retail", Latitude: 14.83812, Longitude: 120.95599, Street: "Housing Project", ZoneType: "Commercial"},
	{BusinessID: 46, BusinessName: "Sandra Store", Category: "Retail", Latitude: 14.83918, Longitude: 120.95609, Street: "Housing Project", ZoneType: "Commercial"},
	{BusinessID: 47, BusinessName: "MONTREAL BATTERY SHOP", Category: "Services", Latitude: 14.83953, Longitude: 120.95625, Street: "Housing Project", ZoneType: "Commercial"},
	{BusinessID: 48, BusinessName: "Lots'A Pizza Fuel Hub", Category: "Restaurant", Latitude: 14.83975, Longitude: 120.95638, Street: "Housing Project", ZoneType: "Commercial"},
	{BusinessID: 49, BusinessName: "SilkshopManila STA.MARIA BULACAN", Category: "Retail", Latitude: 14.84021, Longitude: 120.95641, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 50, BusinessName: "DRD Construction Supply", Category: "Hardware", Latitude: 14.84048, Longitude: 120.95643, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 51, BusinessName: "Jhos Food House", Category: "Restaurant", Latitude: 14.84085, Longitude: 120.95633, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 52, BusinessName: "RLM MEAT SHOP", Category: "Retail", Latitude: 14.84089, Longitude: 120.95635, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 53, BusinessName: "RDC Auto parts and hydraulic hose repair center", Category: "Services", Latitude: 14.84122, Longitude: 120.95639, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 54, BusinessName: "Jollens Peanut butter", Category: "Retail", Latitude: 14.84026, Longitude: 120.95443, Street: "Matimyas St.", ZoneType: "Commercial"},
	{BusinessID: 55, BusinessName: "Body Transformers Gym", Category: "Services", Latitude: 14.84011, Longitude: 120.95516, Street: "Matimyas St.", ZoneType: "Residential"},
	{BusinessID: 56, BusinessName: "Rehydrate Water Refilling Station", Category: "Services", Latitude: 14.84064, Longitude: 120.95496, Street: "Matimyas St.", ZoneType: "Residential"},
	{BusinessID: 57, BusinessName: "XZDK Lumber and trading", Category: "Hardware", Latitude: 14.83721, Longitude: 120.95593, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 58, BusinessName: "Villa Anju Private Resort", Category: "Resort", Latitude: 14.83779, Longitude: 120.9569, Street: "Pag asa St.", ZoneType: "Commercial"},
	{BusinessID: 59, BusinessName: "3Dr Poultry Supply", Category: "Retail", Latitude: 14.84266, Longitude: 120.9566, Street: "Provincial Road", ZoneType: "Commercial"},
	{BusinessID: 60, BusinessName: "Tacia's Store", Category: "Retail", Latitude: 14.84012, Longitude: 120.95516, Street: "Provincial Road", ZoneType: "Commercial"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled Sta. Cruz business dataset into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		if err := appInstance.Primary.EnsureSchema(ctx); err != nil {
			return err
		}

		// Skip when the registry already has data, matching fresh-install
		// semantics.
		existing, err := appInstance.BusinessStore.Statistics(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing data: %w", err)
		}
		if existing.TotalBusinesses > 0 {
			color.Yellow("Database already contains %d businesses. Skipping seed.", existing.TotalBusinesses)
			return nil
		}

		inserted := 0
		for i := range seedBusinesses {
			b := seedBusinesses[i]
			if err := appInstance.BusinessStore.CreateBusiness(ctx, &b); err != nil {
				if errors.Is(err, store.ErrDuplicate) {
					continue
				}
				return fmt.Errorf("failed to seed business %d: %w", b.BusinessID, err)
			}
			inserted++
		}

		color.Green("Successfully seeded %d businesses.", inserted)
		printSeedSummary()
		return nil
	},
}

func printSeedSummary() {
	counts := map[string]int{}
	for _, b := range seedBusinesses {
		counts[b.Category]++
	}
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Count"})
	for _, c := range categories {
		table.Append([]string{c, fmt.Sprintf("%d", counts[c])})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
