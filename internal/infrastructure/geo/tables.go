package geo

import "github.com/proproperty/valuation-api/internal/core/domain"

// pincodeTable covers the Indian postal codes seen most often in the ledger.
// Anything else falls through to the remote postal API.
var pincodeTable = map[string]domain.Place{
	"400001": {City: "Mumbai", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 18.9388, Lon: 72.8354}},
	"400051": {City: "Mumbai", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 19.0596, Lon: 72.8295}},
	"400070": {City: "Mumbai", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 19.0728, Lon: 72.8826}},
	"411001": {City: "Pune", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 18.5196, Lon: 73.8553}},
	"411014": {City: "Pune", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 18.5642, Lon: 73.9140}},
	"411057": {City: "Pune", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 18.6298, Lon: 73.7997}},
	"440001": {City: "Nagpur", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 21.1458, Lon: 79.0882}},
	"431001": {City: "Aurangabad", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 19.8762, Lon: 75.3433}},
	"422001": {City: "Nashik", State: "Maharashtra", Coordinates: domain.Coordinates{Lat: 19.9975, Lon: 73.7898}},
	"560001": {City: "Bangalore", State: "Karnataka", Coordinates: domain.Coordinates{Lat: 12.9716, Lon: 77.5946}},
	"560034": {City: "Bangalore", State: "Karnataka", Coordinates: domain.Coordinates{Lat: 12.9352, Lon: 77.6245}},
	"560068": {City: "Bangalore", State: "Karnataka", Coordinates: domain.Coordinates{Lat: 12.9010, Lon: 77.6490}},
	"575001": {City: "Mangalore", State: "Karnataka", Coordinates: domain.Coordinates{Lat: 12.8698, Lon: 74.8430}},
	"580001": {City: "Hubli", State: "Karnataka", Coordinates: domain.Coordinates{Lat: 15.3647, Lon: 75.1240}},
	"600001": {City: "Chennai", State: "Tamil Nadu", Coordinates: domain.Coordinates{Lat: 13.0827, Lon: 80.2707}},
	"600042": {City: "Chennai", State: "Tamil Nadu", Coordinates: domain.Coordinates{Lat: 13.0500, Lon: 80.2120}},
	"641001": {City: "Coimbatore", State: "Tamil Nadu", Coordinates: domain.Coordinates{Lat: 11.0168, Lon: 76.9558}},
	"625001": {City: "Madurai", State: "Tamil Nadu", Coordinates: domain.Coordinates{Lat: 9.9252, Lon: 78.1198}},
	"620001": {City: "Tiruchirappalli", State: "Tamil Nadu", Coordinates: domain.Coordinates{Lat: 10.7905, Lon: 78.7047}},
	"110001": {City: "New Delhi", State: "Delhi", Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090}},
	"110011": {City: "New Delhi", State: "Delhi", Coordinates: domain.Coordinates{Lat: 28.5921, Lon: 77.1645}},
	"110034": {City: "Delhi", State: "Delhi", Coordinates: domain.Coordinates{Lat: 28.7130, Lon: 77.1475}},
	"110058": {City: "Delhi", State: "Delhi", Coordinates: domain.Coordinates{Lat: 28.6508, Lon: 77.0627}},
	"110092": {City: "Delhi", State: "Delhi", Coordinates: domain.Coordinates{Lat: 28.6692, Lon: 77.3090}},
	"500001": {City: "Hyderabad", State: "Telangana", Coordinates: domain.Coordinates{Lat: 17.3850, Lon: 78.4867}},
	"500032": {City: "Hyderabad", State: "Telangana", Coordinates: domain.Coordinates{Lat: 17.4435, Lon: 78.3772}},
	"500081": {City: "Hyderabad", State: "Telangana", Coordinates: domain.Coordinates{Lat: 17.4947, Lon: 78.3996}},
	"506001": {City: "Warangal", State: "Telangana", Coordinates: domain.Coordinates{Lat: 17.9784, Lon: 79.5941}},
	"380001": {City: "Ahmedabad", State: "Gujarat", Coordinates: domain.Coordinates{Lat: 23.0225, Lon: 72.5714}},
	"380015": {City: "Ahmedabad", State: "Gujarat", Coordinates: domain.Coordinates{Lat: 23.0395, Lon: 72.5070}},
	"395001": {City: "Surat", State: "Gujarat", Coordinates: domain.Coordinates{Lat: 21.1702, Lon: 72.8311}},
	"390001": {City: "Vadodara", State: "Gujarat", Coordinates: domain.Coordinates{Lat: 22.3072, Lon: 73.1812}},
	"360001": {City: "Rajkot", State: "Gujarat", Coordinates: domain.Coordinates{Lat: 22.3039, Lon: 70.8022}},
	"302001": {City: "Jaipur", State: "Rajasthan", Coordinates: domain.Coordinates{Lat: 26.9124, Lon: 75.7873}},
	"302021": {City: "Jaipur", State: "Rajasthan", Coordinates: domain.Coordinates{Lat: 26.8467, Lon: 75.8070}},
	"313001": {City: "Udaipur", State: "Rajasthan", Coordinates: domain.Coordinates{Lat: 24.5854, Lon: 73.7125}},
	"342001": {City: "Jodhpur", State: "Rajasthan", Coordinates: domain.Coordinates{Lat: 26.2389, Lon: 73.0243}},
	"226001": {City: "Lucknow", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 26.8467, Lon: 80.9462}},
	"226010": {City: "Lucknow", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 26.8728, Lon: 80.9942}},
	"201001": {City: "Ghaziabad", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 28.6692, Lon: 77.4538}},
	"211001": {City: "Prayagraj", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 25.4358, Lon: 81.8463}},
	"282001": {City: "Agra", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 27.1767, Lon: 78.0081}},
	"221001": {City: "Varanasi", State: "Uttar Pradesh", Coordinates: domain.Coordinates{Lat: 25.3176, Lon: 82.9739}},
	"700001": {City: "Kolkata", State: "West Bengal", Coordinates: domain.Coordinates{Lat: 22.5726, Lon: 88.3639}},
	"700054": {City: "Kolkata", State: "West Bengal", Coordinates: domain.Coordinates{Lat: 22.5200, Lon: 88.3700}},
	"700102": {City: "Kolkata", State: "West Bengal", Coordinates: domain.Coordinates{Lat: 22.6200, Lon: 88.4300}},
	"160001": {City: "Chandigarh", State: "Chandigarh", Coordinates: domain.Coordinates{Lat: 30.7333, Lon: 76.7794}},
	"141001": {City: "Ludhiana", State: "Punjab", Coordinates: domain.Coordinates{Lat: 30.9010, Lon: 75.8573}},
	"143001": {City: "Amritsar", State: "Punjab", Coordinates: domain.Coordinates{Lat: 31.6340, Lon: 74.8723}},
	"682001": {City: "Kochi", State: "Kerala", Coordinates: domain.Coordinates{Lat: 9.9312, Lon: 76.2673}},
	"695001": {City: "Thiruvananthapuram", State: "Kerala", Coordinates: domain.Coordinates{Lat: 8.5241, Lon: 76.9366}},
	"673001": {City: "Kozhikode", State: "Kerala", Coordinates: domain.Coordinates{Lat: 11.2588, Lon: 75.7804}},
	"462001": {City: "Bhopal", State: "Madhya Pradesh", Coordinates: domain.Coordinates{Lat: 23.2599, Lon: 77.4126}},
	"452001": {City: "Indore", State: "Madhya Pradesh", Coordinates: domain.Coordinates{Lat: 22.7196, Lon: 75.8577}},
	"474001": {City: "Gwalior", State: "Madhya Pradesh", Coordinates: domain.Coordinates{Lat: 26.2183, Lon: 78.1828}},
	"122001": {City: "Gurgaon", State: "Haryana", Coordinates: domain.Coordinates{Lat: 28.4595, Lon: 77.0266}},
	"121001": {City: "Faridabad", State: "Haryana", Coordinates: domain.Coordinates{Lat: 28.4089, Lon: 77.3178}},
	"132001": {City: "Karnal", State: "Haryana", Coordinates: domain.Coordinates{Lat: 29.6857, Lon: 76.9905}},
	"520001": {City: "Vijayawada", State: "Andhra Pradesh", Coordinates: domain.Coordinates{Lat: 16.5062, Lon: 80.6480}},
	"530001": {City: "Visakhapatnam", State: "Andhra Pradesh", Coordinates: domain.Coordinates{Lat: 17.6868, Lon: 83.2185}},
	"751001": {City: "Bhubaneswar", State: "Odisha", Coordinates: domain.Coordinates{Lat: 20.2961, Lon: 85.8245}},
	"753001": {City: "Cuttack", State: "Odisha", Coordinates: domain.Coordinates{Lat: 20.4625, Lon: 85.8830}},
	"800001": {City: "Patna", State: "Bihar", Coordinates: domain.Coordinates{Lat: 25.5941, Lon: 85.1376}},
	"781001": {City: "Guwahati", State: "Assam", Coordinates: domain.Coordinates{Lat: 26.1445, Lon: 91.7362}},
	"834001": {City: "Ranchi", State: "Jharkhand", Coordinates: domain.Coordinates{Lat: 23.3441, Lon: 85.3096}},
	"248001": {City: "Dehradun", State: "Uttarakhand", Coordinates: domain.Coordinates{Lat: 30.3165, Lon: 78.0322}},
	"171001": {City: "Shimla", State: "Himachal Pradesh", Coordinates: domain.Coordinates{Lat: 31.1048, Lon: 77.1734}},
	"403001": {City: "Panaji", State: "Goa", Coordinates: domain.Coordinates{Lat: 15.4909, Lon: 73.8278}},
}

// cityTable keys are lowercased city names.
var cityTable = map[string]domain.Coordinates{
	"mumbai":             {Lat: 18.9388, Lon: 72.8354},
	"pune":               {Lat: 18.5196, Lon: 73.8553},
	"bangalore":          {Lat: 12.9716, Lon: 77.5946},
	"bengaluru":          {Lat: 12.9716, Lon: 77.5946},
	"chennai":            {Lat: 13.0827, Lon: 80.2707},
	"hyderabad":          {Lat: 17.3850, Lon: 78.4867},
	"delhi":              {Lat: 28.6139, Lon: 77.2090},
	"new delhi":          {Lat: 28.6139, Lon: 77.2090},
	"kolkata":            {Lat: 22.5726, Lon: 88.3639},
	"ahmedabad":          {Lat: 23.0225, Lon: 72.5714},
	"surat":              {Lat: 21.1702, Lon: 72.8311},
	"jaipur":             {Lat: 26.9124, Lon: 75.7873},
	"lucknow":            {Lat: 26.8467, Lon: 80.9462},
	"nagpur":             {Lat: 21.1458, Lon: 79.0882},
	"patna":              {Lat: 25.5941, Lon: 85.1376},
	"indore":             {Lat: 22.7196, Lon: 75.8577},
	"bhopal":             {Lat: 23.2599, Lon: 77.4126},
	"visakhapatnam":      {Lat: 17.6868, Lon: 83.2185},
	"vadodara":           {Lat: 22.3072, Lon: 73.1812},
	"ghaziabad":          {Lat: 28.6692, Lon: 77.4538},
	"ludhiana":           {Lat: 30.9010, Lon: 75.8573},
	"agra":               {Lat: 27.1767, Lon: 78.0081},
	"nashik":             {Lat: 19.9975, Lon: 73.7898},
	"vijayawada":         {Lat: 16.5062, Lon: 80.6480},
	"rajkot":             {Lat: 22.3039, Lon: 70.8022},
	"meerut":             {Lat: 28.9845, Lon: 77.7064},
	"coimbatore":         {Lat: 11.0168, Lon: 76.9558},
	"chandigarh":         {Lat: 30.7333, Lon: 76.7794},
	"amritsar":           {Lat: 31.6340, Lon: 74.8723},
	"gurgaon":            {Lat: 28.4595, Lon: 77.0266},
	"gurugram":           {Lat: 28.4595, Lon: 77.0266},
	"noida":              {Lat: 28.5355, Lon: 77.3910},
	"kochi":              {Lat: 9.9312, Lon: 76.2673},
	"bhubaneswar":        {Lat: 20.2961, Lon: 85.8245},
	"dehradun":           {Lat: 30.3165, Lon: 78.0322},
	"ranchi":             {Lat: 23.3441, Lon: 85.3096},
	"guwahati":           {Lat: 26.1445, Lon: 91.7362},
	"thiruvananthapuram": {Lat: 8.5241, Lon: 76.9366},
	"mangalore":          {Lat: 12.8698, Lon: 74.8430},
	"hubli":              {Lat: 15.3647, Lon: 75.1240},
	"madurai":            {Lat: 9.9252, Lon: 78.1198},
	"varanasi":           {Lat: 25.3176, Lon: 82.9739},
	"udaipur":            {Lat: 24.5854, Lon: 73.7125},
	"jodhpur":            {Lat: 26.2389, Lon: 73.0243},
	"gwalior":            {Lat: 26.2183, Lon: 78.1828},
	"faridabad":          {Lat: 28.4089, Lon: 77.3178},
	"panaji":             {Lat: 15.4909, Lon: 73.8278},
	"shimla":             {Lat: 31.1048, Lon: 77.1734},
	"aurangabad":         {Lat: 19.8762, Lon: 75.3433},
	"warangal":           {Lat: 17.9784, Lon: 79.5941},
	"kozhikode":          {Lat: 11.2588, Lon: 75.7804},
	"tiruchirappalli":    {Lat: 10.7905, Lon: 78.7047},
	"prayagraj":          {Lat: 25.4358, Lon: 81.8463},
	"allahabad":          {Lat: 25.4358, Lon: 81.8463},
	"cuttack":            {Lat: 20.4625, Lon: 85.8830},
	"karnal":             {Lat: 29.6857, Lon: 76.9905},
	"new york":           {Lat: 40.7128, Lon: -74.0060},
	"los angeles":        {Lat: 34.0522, Lon: -118.2437},
	"chicago":            {Lat: 41.8781, Lon: -87.6298},
	"houston":            {Lat: 29.7604, Lon: -95.3698},
	"phoenix":            {Lat: 33.4484, Lon: -112.0740},
	"philadelphia":       {Lat: 39.9526, Lon: -75.1652},
	"san antonio":        {Lat: 29.4241, Lon: -98.4936},
	"san diego":          {Lat: 32.7157, Lon: -117.1611},
	"dallas":             {Lat: 32.7767, Lon: -96.7970},
	"san francisco":      {Lat: 37.7749, Lon: -122.4194},
	"seattle":            {Lat: 47.6062, Lon: -122.3321},
	"boston":             {Lat: 42.3601, Lon: -71.0589},
	"miami":              {Lat: 25.7617, Lon: -80.1918},
	"atlanta":            {Lat: 33.7490, Lon: -84.3880},
	"london":             {Lat: 51.5074, Lon: -0.1278},
	"manchester":         {Lat: 53.4808, Lon: -2.2426},
	"birmingham":         {Lat: 52.4862, Lon: -1.8904},
	"glasgow":            {Lat: 55.8642, Lon: -4.2518},
	"edinburgh":          {Lat: 55.9533, Lon: -3.1883},
	"dubai":              {Lat: 25.2048, Lon: 55.2708},
	"abu dhabi":          {Lat: 24.4539, Lon: 54.3773},
	"sharjah":            {Lat: 25.3463, Lon: 55.4209},
}
