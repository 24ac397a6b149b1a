package velmodel

import "sync"

// Isotropic PREM of Dziewonski and Anderson (1981), the polynomial model
// evaluated on a 20 km grid with exact rows at every layer boundary.
// Repeated depths carry the one-sided values across the major
// discontinuities: the crustal stack at 3, 15 and 24.4 km, the 220, 400
// and 670 km transitions, the core-mantle boundary at 2891 km and the
// inner-core boundary at 5149.5 km.
var premNodes = []Node{
	{DepthKm: 0.0, Vp: 1.45, Vs: 0.0, Rho: 1.02},
	{DepthKm: 3.0, Vp: 1.45, Vs: 0.0, Rho: 1.02},
	{DepthKm: 3.0, Vp: 5.8, Vs: 3.2, Rho: 2.6},
	{DepthKm: 15.0, Vp: 5.8, Vs: 3.2, Rho: 2.6},
	{DepthKm: 15.0, Vp: 6.8, Vs: 3.9, Rho: 2.9},
	{DepthKm: 24.4, Vp: 6.8, Vs: 3.9, Rho: 2.9},
	{DepthKm: 24.4, Vp: 8.11062, Vs: 4.49101, Rho: 3.38075},
	{DepthKm: 43.96, Vp: 8.09853, Vs: 4.4838, Rho: 3.37862},
	{DepthKm: 63.52, Vp: 8.08644, Vs: 4.47659, Rho: 3.3765},
	{DepthKm: 83.08, Vp: 8.07434, Vs: 4.46938, Rho: 3.37437},
	{DepthKm: 102.64, Vp: 8.06225, Vs: 4.46217, Rho: 3.37225},
	{DepthKm: 122.2, Vp: 8.05016, Vs: 4.45496, Rho: 3.37012},
	{DepthKm: 141.76, Vp: 8.03807, Vs: 4.44775, Rho: 3.36799},
	{DepthKm: 161.32, Vp: 8.02598, Vs: 4.44054, Rho: 3.36587},
	{DepthKm: 180.88, Vp: 8.01389, Vs: 4.43333, Rho: 3.36374},
	{DepthKm: 200.44, Vp: 8.0018, Vs: 4.42613, Rho: 3.36162},
	{DepthKm: 220.0, Vp: 7.98971, Vs: 4.41892, Rho: 3.35949},
	{DepthKm: 220.0, Vp: 8.55895, Vs: 4.6439, Rho: 3.43577},
	{DepthKm: 240.0, Vp: 8.59743, Vs: 4.6579, Rho: 3.44772},
	{DepthKm: 260.0, Vp: 8.6359, Vs: 4.6719, Rho: 3.45966},
	{DepthKm: 280.0, Vp: 8.67438, Vs: 4.6859, Rho: 3.4716},
	{DepthKm: 300.0, Vp: 8.71286, Vs: 4.6999, Rho: 3.48355},
	{DepthKm: 320.0, Vp: 8.75133, Vs: 4.7139, Rho: 3.49549},
	{DepthKm: 340.0, Vp: 8.78981, Vs: 4.7279, Rho: 3.50743},
	{DepthKm: 360.0, Vp: 8.82829, Vs: 4.7419, Rho: 3.51938},
	{DepthKm: 380.0, Vp: 8.86677, Vs: 4.7559, Rho: 3.53132},
	{DepthKm: 400.0, Vp: 8.90524, Vs: 4.7699, Rho: 3.54326},
	{DepthKm: 400.0, Vp: 9.13392, Vs: 4.93249, Rho: 3.72375},
	{DepthKm: 420.0, Vp: 9.23631, Vs: 4.99083, Rho: 3.74895},
	{DepthKm: 440.0, Vp: 9.3387, Vs: 5.04918, Rho: 3.77416},
	{DepthKm: 460.0, Vp: 9.44109, Vs: 5.10752, Rho: 3.79937},
	{DepthKm: 480.0, Vp: 9.54348, Vs: 5.16586, Rho: 3.82458},
	{DepthKm: 500.0, Vp: 9.64587, Vs: 5.22421, Rho: 3.84978},
	{DepthKm: 520.0, Vp: 9.74826, Vs: 5.28255, Rho: 3.87499},
	{DepthKm: 540.0, Vp: 9.85065, Vs: 5.3409, Rho: 3.9002},
	{DepthKm: 560.0, Vp: 9.95304, Vs: 5.39924, Rho: 3.92541},
	{DepthKm: 580.0, Vp: 10.05543, Vs: 5.45759, Rho: 3.95061},
	{DepthKm: 600.0, Vp: 10.15783, Vs: 5.51593, Rho: 3.97582},
	{DepthKm: 617.5, Vp: 10.18486, Vs: 5.52957, Rho: 3.9799},
	{DepthKm: 635.0, Vp: 10.21197, Vs: 5.54311, Rho: 3.98397},
	{DepthKm: 652.5, Vp: 10.23907, Vs: 5.55666, Rho: 3.98805},
	{DepthKm: 670.0, Vp: 10.26617, Vs: 5.57021, Rho: 3.99212},
	{DepthKm: 670.0, Vp: 10.75132, Vs: 5.94513, Rho: 4.38074},
	{DepthKm: 686.8333, Vp: 10.80374, Vs: 5.99434, Rho: 4.39125},
	{DepthKm: 703.6667, Vp: 10.85615, Vs: 6.04357, Rho: 4.40171},
	{DepthKm: 720.5, Vp: 10.90854, Vs: 6.0928, Rho: 4.41214},
	{DepthKm: 737.3333, Vp: 10.96091, Vs: 6.14204, Rho: 4.42253},
	{DepthKm: 754.1667, Vp: 11.01326, Vs: 6.19128, Rho: 4.43289},
	{DepthKm: 771.0, Vp: 11.0656, Vs: 6.24054, Rho: 4.4432},
	{DepthKm: 790.899, Vp: 11.10199, Vs: 6.25468, Rho: 4.45535},
	{DepthKm: 810.798, Vp: 11.13803, Vs: 6.26883, Rho: 4.46745},
	{DepthKm: 830.697, Vp: 11.17372, Vs: 6.28285, Rho: 4.4795},
	{DepthKm: 850.596, Vp: 11.20905, Vs: 6.29674, Rho: 4.49151},
	{DepthKm: 870.4949, Vp: 11.24403, Vs: 6.3105, Rho: 4.50346},
	{DepthKm: 890.3939, Vp: 11.27868, Vs: 6.32413, Rho: 4.51536},
	{DepthKm: 910.2929, Vp: 11.31299, Vs: 6.33763, Rho: 4.52722},
	{DepthKm: 930.1919, Vp: 11.34696, Vs: 6.35101, Rho: 4.53903},
	{DepthKm: 950.0909, Vp: 11.38061, Vs: 6.36427, Rho: 4.5508},
	{DepthKm: 969.9899, Vp: 11.41393, Vs: 6.3774, Rho: 4.56252},
	{DepthKm: 989.8889, Vp: 11.44694, Vs: 6.39041, Rho: 4.57419},
	{DepthKm: 1009.7879, Vp: 11.47964, Vs: 6.40331, Rho: 4.58582},
	{DepthKm: 1029.6869, Vp: 11.51202, Vs: 6.41609, Rho: 4.59741},
	{DepthKm: 1049.5859, Vp: 11.54411, Vs: 6.42875, Rho: 4.60895},
	{DepthKm: 1069.4848, Vp: 11.57589, Vs: 6.4413, Rho: 4.62045},
	{DepthKm: 1089.3838, Vp: 11.60739, Vs: 6.45374, Rho: 4.63191},
	{DepthKm: 1109.2828, Vp: 11.63859, Vs: 6.46608, Rho: 4.64333},
	{DepthKm: 1129.1818, Vp: 11.66951, Vs: 6.4783, Rho: 4.6547},
	{DepthKm: 1149.0808, Vp: 11.70016, Vs: 6.49042, Rho: 4.66604},
	{DepthKm: 1168.9798, Vp: 11.73052, Vs: 6.50243, Rho: 4.67733},
	{DepthKm: 1188.8788, Vp: 11.76063, Vs: 6.51434, Rho: 4.68859},
	{DepthKm: 1208.7778, Vp: 11.79046, Vs: 6.52615, Rho: 4.6998},
	{DepthKm: 1228.6768, Vp: 11.82004, Vs: 6.53786, Rho: 4.71098},
	{DepthKm: 1248.5758, Vp: 11.84936, Vs: 6.54947, Rho: 4.72212},
	{DepthKm: 1268.4747, Vp: 11.87844, Vs: 6.56098, Rho: 4.73323},
	{DepthKm: 1288.3737, Vp: 11.90727, Vs: 6.5724, Rho: 4.74429},
	{DepthKm: 1308.2727, Vp: 11.93585, Vs: 6.58373, Rho: 4.75532},
	{DepthKm: 1328.1717, Vp: 11.96421, Vs: 6.59497, Rho: 4.76632},
	{DepthKm: 1348.0707, Vp: 11.99234, Vs: 6.60612, Rho: 4.77728},
	{DepthKm: 1367.9697, Vp: 12.02024, Vs: 6.61718, Rho: 4.78821},
	{DepthKm: 1387.8687, Vp: 12.04792, Vs: 6.62815, Rho: 4.7991},
	{DepthKm: 1407.7677, Vp: 12.07538, Vs: 6.63904, Rho: 4.80996},
	{DepthKm: 1427.6667, Vp: 12.10263, Vs: 6.64985, Rho: 4.82079},
	{DepthKm: 1447.5657, Vp: 12.12968, Vs: 6.66058, Rho: 4.83158},
	{DepthKm: 1467.4646, Vp: 12.15653, Vs: 6.67123, Rho: 4.84234},
	{DepthKm: 1487.3636, Vp: 12.18319, Vs: 6.6818, Rho: 4.85308},
	{DepthKm: 1507.2626, Vp: 12.20965, Vs: 6.69229, Rho: 4.86378},
	{DepthKm: 1527.1616, Vp: 12.23592, Vs: 6.70272, Rho: 4.87445},
	{DepthKm: 1547.0606, Vp: 12.26202, Vs: 6.71307, Rho: 4.88509},
	{DepthKm: 1566.9596, Vp: 12.28794, Vs: 6.72334, Rho: 4.89571},
	{DepthKm: 1586.8586, Vp: 12.31368, Vs: 6.73355, Rho: 4.90629},
	{DepthKm: 1606.7576, Vp: 12.33926, Vs: 6.7437, Rho: 4.91685},
	{DepthKm: 1626.6566, Vp: 12.36468, Vs: 6.75377, Rho: 4.92738},
	{DepthKm: 1646.5556, Vp: 12.38994, Vs: 6.76379, Rho: 4.93789},
	{DepthKm: 1666.4545, Vp: 12.41505, Vs: 6.77374, Rho: 4.94837},
	{DepthKm: 1686.3535, Vp: 12.44002, Vs: 6.78363, Rho: 4.95882},
	{DepthKm: 1706.2525, Vp: 12.46484, Vs: 6.79346, Rho: 4.96925},
	{DepthKm: 1726.1515, Vp: 12.48952, Vs: 6.80324, Rho: 4.97966},
	{DepthKm: 1746.0505, Vp: 12.51407, Vs: 6.81296, Rho: 4.99004},
	{DepthKm: 1765.9495, Vp: 12.5385, Vs: 6.82262, Rho: 5.0004},
	{DepthKm: 1785.8485, Vp: 12.5628, Vs: 6.83224, Rho: 5.01074},
	{DepthKm: 1805.7475, Vp: 12.58698, Vs: 6.8418, Rho: 5.02105},
	{DepthKm: 1825.6465, Vp: 12.61105, Vs: 6.85132, Rho: 5.03134},
	{DepthKm: 1845.5455, Vp: 12.63501, Vs: 6.86079, Rho: 5.04161},
	{DepthKm: 1865.4444, Vp: 12.65887, Vs: 6.87021, Rho: 5.05187},
	{DepthKm: 1885.3434, Vp: 12.68263, Vs: 6.87959, Rho: 5.0621},
	{DepthKm: 1905.2424, Vp: 12.7063, Vs: 6.88893, Rho: 5.07231},
	{DepthKm: 1925.1414, Vp: 12.72988, Vs: 6.89823, Rho: 5.08251},
	{DepthKm: 1945.0404, Vp: 12.75337, Vs: 6.90749, Rho: 5.09268},
	{DepthKm: 1964.9394, Vp: 12.77679, Vs: 6.91671, Rho: 5.10284},
	{DepthKm: 1984.8384, Vp: 12.80013, Vs: 6.9259, Rho: 5.11298},
	{DepthKm: 2004.7374, Vp: 12.8234, Vs: 6.93506, Rho: 5.12311},
	{DepthKm: 2024.6364, Vp: 12.84661, Vs: 6.94418, Rho: 5.13322},
	{DepthKm: 2044.5354, Vp: 12.86976, Vs: 6.95327, Rho: 5.14332},
	{DepthKm: 2064.4343, Vp: 12.89286, Vs: 6.96234, Rho: 5.1534},
	{DepthKm: 2084.3333, Vp: 12.9159, Vs: 6.97138, Rho: 5.16346},
	{DepthKm: 2104.2323, Vp: 12.9389, Vs: 6.98039, Rho: 5.17352},
	{DepthKm: 2124.1313, Vp: 12.96186, Vs: 6.98938, Rho: 5.18356},
	{DepthKm: 2144.0303, Vp: 12.98479, Vs: 6.99835, Rho: 5.19358},
	{DepthKm: 2163.9293, Vp: 13.00768, Vs: 7.0073, Rho: 5.2036},
	{DepthKm: 2183.8283, Vp: 13.03055, Vs: 7.01624, Rho: 5.21361},
	{DepthKm: 2203.7273, Vp: 13.0534, Vs: 7.02515, Rho: 5.2236},
	{DepthKm: 2223.6263, Vp: 13.07624, Vs: 7.03405, Rho: 5.23358},
	{DepthKm: 2243.5253, Vp: 13.09906, Vs: 7.04294, Rho: 5.24356},
	{DepthKm: 2263.4242, Vp: 13.12188, Vs: 7.05182, Rho: 5.25352},
	{DepthKm: 2283.3232, Vp: 13.14469, Vs: 7.06069, Rho: 5.26348},
	{DepthKm: 2303.2222, Vp: 13.16751, Vs: 7.06955, Rho: 5.27343},
	{DepthKm: 2323.1212, Vp: 13.19034, Vs: 7.0784, Rho: 5.28337},
	{DepthKm: 2343.0202, Vp: 13.21319, Vs: 7.08725, Rho: 5.29331},
	{DepthKm: 2362.9192, Vp: 13.23605, Vs: 7.0961, Rho: 5.30324},
	{DepthKm: 2382.8182, Vp: 13.25893, Vs: 7.10494, Rho: 5.31316},
	{DepthKm: 2402.7172, Vp: 13.28185, Vs: 7.11379, Rho: 5.32308},
	{DepthKm: 2422.6162, Vp: 13.30479, Vs: 7.12264, Rho: 5.33299},
	{DepthKm: 2442.5152, Vp: 13.32778, Vs: 7.13149, Rho: 5.3429},
	{DepthKm: 2462.4141, Vp: 13.35081, Vs: 7.14035, Rho: 5.35281},
	{DepthKm: 2482.3131, Vp: 13.37388, Vs: 7.14922, Rho: 5.36272},
	{DepthKm: 2502.2121, Vp: 13.39701, Vs: 7.15809, Rho: 5.37262},
	{DepthKm: 2522.1111, Vp: 13.42019, Vs: 7.16698, Rho: 5.38252},
	{DepthKm: 2542.0101, Vp: 13.44344, Vs: 7.17588, Rho: 5.39242},
	{DepthKm: 2561.9091, Vp: 13.46676, Vs: 7.18479, Rho: 5.40232},
	{DepthKm: 2581.8081, Vp: 13.49014, Vs: 7.19372, Rho: 5.41222},
	{DepthKm: 2601.7071, Vp: 13.51361, Vs: 7.20266, Rho: 5.42212},
	{DepthKm: 2621.6061, Vp: 13.53716, Vs: 7.21163, Rho: 5.43202},
	{DepthKm: 2641.5051, Vp: 13.56079, Vs: 7.22062, Rho: 5.44192},
	{DepthKm: 2661.404, Vp: 13.58451, Vs: 7.22963, Rho: 5.45182},
	{DepthKm: 2681.303, Vp: 13.60833, Vs: 7.23866, Rho: 5.46173},
	{DepthKm: 2701.202, Vp: 13.63226, Vs: 7.24772, Rho: 5.47164},
	{DepthKm: 2721.101, Vp: 13.65628, Vs: 7.25681, Rho: 5.48156},
	{DepthKm: 2741.0, Vp: 13.68042, Vs: 7.26593, Rho: 5.49148},
	{DepthKm: 2759.75, Vp: 13.68489, Vs: 7.26583, Rho: 5.50083},
	{DepthKm: 2778.5, Vp: 13.68936, Vs: 7.26569, Rho: 5.51018},
	{DepthKm: 2797.25, Vp: 13.69385, Vs: 7.26553, Rho: 5.51955},
	{DepthKm: 2816.0, Vp: 13.69836, Vs: 7.26537, Rho: 5.52891},
	{DepthKm: 2834.75, Vp: 13.70289, Vs: 7.2652, Rho: 5.53829},
	{DepthKm: 2853.5, Vp: 13.70745, Vs: 7.26503, Rho: 5.54767},
	{DepthKm: 2872.25, Vp: 13.71202, Vs: 7.26484, Rho: 5.55706},
	{DepthKm: 2891.0, Vp: 13.71662, Vs: 7.26465, Rho: 5.56646},
	{DepthKm: 2891.0, Vp: 8.06479, Vs: 0.0, Rho: 9.90344},
	{DepthKm: 2910.9867, Vp: 8.09893, Vs: 0.0, Rho: 9.93529},
	{DepthKm: 2930.9735, Vp: 8.13274, Vs: 0.0, Rho: 9.96688},
	{DepthKm: 2950.9602, Vp: 8.16621, Vs: 0.0, Rho: 9.99823},
	{DepthKm: 2970.9469, Vp: 8.19934, Vs: 0.0, Rho: 10.02934},
	{DepthKm: 2990.9336, Vp: 8.23214, Vs: 0.0, Rho: 10.06019},
	{DepthKm: 3010.9204, Vp: 8.2646, Vs: 0.0, Rho: 10.0908},
	{DepthKm: 3030.9071, Vp: 8.29674, Vs: 0.0, Rho: 10.12117},
	{DepthKm: 3050.8938, Vp: 8.32856, Vs: 0.0, Rho: 10.1513},
	{DepthKm: 3070.8805, Vp: 8.36005, Vs: 0.0, Rho: 10.18118},
	{DepthKm: 3090.8673, Vp: 8.39122, Vs: 0.0, Rho: 10.21082},
	{DepthKm: 3110.854, Vp: 8.42207, Vs: 0.0, Rho: 10.24023},
	{DepthKm: 3130.8407, Vp: 8.45261, Vs: 0.0, Rho: 10.26939},
	{DepthKm: 3150.8274, Vp: 8.48283, Vs: 0.0, Rho: 10.29832},
	{DepthKm: 3170.8142, Vp: 8.51274, Vs: 0.0, Rho: 10.32701},
	{DepthKm: 3190.8009, Vp: 8.54235, Vs: 0.0, Rho: 10.35546},
	{DepthKm: 3210.7876, Vp: 8.57165, Vs: 0.0, Rho: 10.38368},
	{DepthKm: 3230.7743, Vp: 8.60064, Vs: 0.0, Rho: 10.41167},
	{DepthKm: 3250.7611, Vp: 8.62934, Vs: 0.0, Rho: 10.43942},
	{DepthKm: 3270.7478, Vp: 8.65773, Vs: 0.0, Rho: 10.46694},
	{DepthKm: 3290.7345, Vp: 8.68584, Vs: 0.0, Rho: 10.49423},
	{DepthKm: 3310.7212, Vp: 8.71365, Vs: 0.0, Rho: 10.52129},
	{DepthKm: 3330.708, Vp: 8.74116, Vs: 0.0, Rho: 10.54813},
	{DepthKm: 3350.6947, Vp: 8.76839, Vs: 0.0, Rho: 10.57473},
	{DepthKm: 3370.6814, Vp: 8.79534, Vs: 0.0, Rho: 10.60111},
	{DepthKm: 3390.6681, Vp: 8.822, Vs: 0.0, Rho: 10.62727},
	{DepthKm: 3410.6549, Vp: 8.84838, Vs: 0.0, Rho: 10.6532},
	{DepthKm: 3430.6416, Vp: 8.87449, Vs: 0.0, Rho: 10.6789},
	{DepthKm: 3450.6283, Vp: 8.90031, Vs: 0.0, Rho: 10.70438},
	{DepthKm: 3470.615, Vp: 8.92587, Vs: 0.0, Rho: 10.72965},
	{DepthKm: 3490.6018, Vp: 8.95116, Vs: 0.0, Rho: 10.75469},
	{DepthKm: 3510.5885, Vp: 8.97617, Vs: 0.0, Rho: 10.77951},
	{DepthKm: 3530.5752, Vp: 9.00092, Vs: 0.0, Rho: 10.80412},
	{DepthKm: 3550.5619, Vp: 9.02541, Vs: 0.0, Rho: 10.8285},
	{DepthKm: 3570.5487, Vp: 9.04964, Vs: 0.0, Rho: 10.85267},
	{DepthKm: 3590.5354, Vp: 9.07361, Vs: 0.0, Rho: 10.87663},
	{DepthKm: 3610.5221, Vp: 9.09733, Vs: 0.0, Rho: 10.90037},
	{DepthKm: 3630.5088, Vp: 9.12079, Vs: 0.0, Rho: 10.9239},
	{DepthKm: 3650.4956, Vp: 9.14401, Vs: 0.0, Rho: 10.94722},
	{DepthKm: 3670.4823, Vp: 9.16697, Vs: 0.0, Rho: 10.97032},
	{DepthKm: 3690.469, Vp: 9.18969, Vs: 0.0, Rho: 10.99322},
	{DepthKm: 3710.4558, Vp: 9.21217, Vs: 0.0, Rho: 11.0159},
	{DepthKm: 3730.4425, Vp: 9.2344, Vs: 0.0, Rho: 11.03838},
	{DepthKm: 3750.4292, Vp: 9.2564, Vs: 0.0, Rho: 11.06065},
	{DepthKm: 3770.4159, Vp: 9.27817, Vs: 0.0, Rho: 11.08272},
	{DepthKm: 3790.4027, Vp: 9.2997, Vs: 0.0, Rho: 11.10458},
	{DepthKm: 3810.3894, Vp: 9.321, Vs: 0.0, Rho: 11.12623},
	{DepthKm: 3830.3761, Vp: 9.34208, Vs: 0.0, Rho: 11.14769},
	{DepthKm: 3850.3628, Vp: 9.36292, Vs: 0.0, Rho: 11.16894},
	{DepthKm: 3870.3496, Vp: 9.38355, Vs: 0.0, Rho: 11.18999},
	{DepthKm: 3890.3363, Vp: 9.40396, Vs: 0.0, Rho: 11.21084},
	{DepthKm: 3910.323, Vp: 9.42414, Vs: 0.0, Rho: 11.23149},
	{DepthKm: 3930.3097, Vp: 9.44412, Vs: 0.0, Rho: 11.25195},
	{DepthKm: 3950.2965, Vp: 9.46388, Vs: 0.0, Rho: 11.27221},
	{DepthKm: 3970.2832, Vp: 9.48343, Vs: 0.0, Rho: 11.29227},
	{DepthKm: 3990.2699, Vp: 9.50277, Vs: 0.0, Rho: 11.31213},
	{DepthKm: 4010.2566, Vp: 9.52191, Vs: 0.0, Rho: 11.33181},
	{DepthKm: 4030.2434, Vp: 9.54085, Vs: 0.0, Rho: 11.35129},
	{DepthKm: 4050.2301, Vp: 9.55958, Vs: 0.0, Rho: 11.37058},
	{DepthKm: 4070.2168, Vp: 9.57812, Vs: 0.0, Rho: 11.38968},
	{DepthKm: 4090.2035, Vp: 9.59647, Vs: 0.0, Rho: 11.40859},
	{DepthKm: 4110.1903, Vp: 9.61462, Vs: 0.0, Rho: 11.42731},
	{DepthKm: 4130.177, Vp: 9.63258, Vs: 0.0, Rho: 11.44584},
	{DepthKm: 4150.1637, Vp: 9.65035, Vs: 0.0, Rho: 11.46419},
	{DepthKm: 4170.1504, Vp: 9.66794, Vs: 0.0, Rho: 11.48235},
	{DepthKm: 4190.1372, Vp: 9.68535, Vs: 0.0, Rho: 11.50032},
	{DepthKm: 4210.1239, Vp: 9.70258, Vs: 0.0, Rho: 11.51812},
	{DepthKm: 4230.1106, Vp: 9.71963, Vs: 0.0, Rho: 11.53573},
	{DepthKm: 4250.0973, Vp: 9.7365, Vs: 0.0, Rho: 11.55316},
	{DepthKm: 4270.0841, Vp: 9.7532, Vs: 0.0, Rho: 11.5704},
	{DepthKm: 4290.0708, Vp: 9.76974, Vs: 0.0, Rho: 11.58747},
	{DepthKm: 4310.0575, Vp: 9.7861, Vs: 0.0, Rho: 11.60436},
	{DepthKm: 4330.0442, Vp: 9.8023, Vs: 0.0, Rho: 11.62108},
	{DepthKm: 4350.031, Vp: 9.81834, Vs: 0.0, Rho: 11.63762},
	{DepthKm: 4370.0177, Vp: 9.83422, Vs: 0.0, Rho: 11.65398},
	{DepthKm: 4390.0044, Vp: 9.84994, Vs: 0.0, Rho: 11.67017},
	{DepthKm: 4409.9912, Vp: 9.86551, Vs: 0.0, Rho: 11.68618},
	{DepthKm: 4429.9779, Vp: 9.88092, Vs: 0.0, Rho: 11.70202},
	{DepthKm: 4449.9646, Vp: 9.89619, Vs: 0.0, Rho: 11.7177},
	{DepthKm: 4469.9513, Vp: 9.91131, Vs: 0.0, Rho: 11.7332},
	{DepthKm: 4489.9381, Vp: 9.92628, Vs: 0.0, Rho: 11.74853},
	{DepthKm: 4509.9248, Vp: 9.94111, Vs: 0.0, Rho: 11.76369},
	{DepthKm: 4529.9115, Vp: 9.9558, Vs: 0.0, Rho: 11.77869},
	{DepthKm: 4549.8982, Vp: 9.97036, Vs: 0.0, Rho: 11.79352},
	{DepthKm: 4569.885, Vp: 9.98478, Vs: 0.0, Rho: 11.80819},
	{DepthKm: 4589.8717, Vp: 9.99906, Vs: 0.0, Rho: 11.82269},
	{DepthKm: 4609.8584, Vp: 10.01322, Vs: 0.0, Rho: 11.83703},
	{DepthKm: 4629.8451, Vp: 10.02725, Vs: 0.0, Rho: 11.85121},
	{DepthKm: 4649.8319, Vp: 10.04116, Vs: 0.0, Rho: 11.86522},
	{DepthKm: 4669.8186, Vp: 10.05495, Vs: 0.0, Rho: 11.87908},
	{DepthKm: 4689.8053, Vp: 10.06861, Vs: 0.0, Rho: 11.89278},
	{DepthKm: 4709.792, Vp: 10.08216, Vs: 0.0, Rho: 11.90632},
	{DepthKm: 4729.7788, Vp: 10.09559, Vs: 0.0, Rho: 11.9197},
	{DepthKm: 4749.7655, Vp: 10.10892, Vs: 0.0, Rho: 11.93293},
	{DepthKm: 4769.7522, Vp: 10.12213, Vs: 0.0, Rho: 11.946},
	{DepthKm: 4789.7389, Vp: 10.13523, Vs: 0.0, Rho: 11.95892},
	{DepthKm: 4809.7257, Vp: 10.14823, Vs: 0.0, Rho: 11.97168},
	{DepthKm: 4829.7124, Vp: 10.16113, Vs: 0.0, Rho: 11.9843},
	{DepthKm: 4849.6991, Vp: 10.17393, Vs: 0.0, Rho: 11.99676},
	{DepthKm: 4869.6858, Vp: 10.18664, Vs: 0.0, Rho: 12.00908},
	{DepthKm: 4889.6726, Vp: 10.19924, Vs: 0.0, Rho: 12.02124},
	{DepthKm: 4909.6593, Vp: 10.21176, Vs: 0.0, Rho: 12.03326},
	{DepthKm: 4929.646, Vp: 10.22419, Vs: 0.0, Rho: 12.04513},
	{DepthKm: 4949.6327, Vp: 10.23653, Vs: 0.0, Rho: 12.05686},
	{DepthKm: 4969.6195, Vp: 10.24879, Vs: 0.0, Rho: 12.06844},
	{DepthKm: 4989.6062, Vp: 10.26096, Vs: 0.0, Rho: 12.07987},
	{DepthKm: 5009.5929, Vp: 10.27306, Vs: 0.0, Rho: 12.09117},
	{DepthKm: 5029.5796, Vp: 10.28507, Vs: 0.0, Rho: 12.10232},
	{DepthKm: 5049.5664, Vp: 10.29702, Vs: 0.0, Rho: 12.11334},
	{DepthKm: 5069.5531, Vp: 10.30889, Vs: 0.0, Rho: 12.12421},
	{DepthKm: 5089.5398, Vp: 10.3207, Vs: 0.0, Rho: 12.13495},
	{DepthKm: 5109.5265, Vp: 10.33243, Vs: 0.0, Rho: 12.14554},
	{DepthKm: 5129.5133, Vp: 10.3441, Vs: 0.0, Rho: 12.15601},
	{DepthKm: 5149.5, Vp: 10.35572, Vs: 0.0, Rho: 12.16633},
	{DepthKm: 5149.5, Vp: 11.02826, Vs: 3.50431, Rho: 12.76361},
	{DepthKm: 5169.2016, Vp: 11.03575, Vs: 3.50954, Rho: 12.77401},
	{DepthKm: 5188.9032, Vp: 11.04311, Vs: 3.51469, Rho: 12.78424},
	{DepthKm: 5208.6048, Vp: 11.05035, Vs: 3.51975, Rho: 12.79429},
	{DepthKm: 5228.3065, Vp: 11.05747, Vs: 3.52473, Rho: 12.80418},
	{DepthKm: 5248.0081, Vp: 11.06447, Vs: 3.52962, Rho: 12.8139},
	{DepthKm: 5267.7097, Vp: 11.07135, Vs: 3.53442, Rho: 12.82345},
	{DepthKm: 5287.4113, Vp: 11.0781, Vs: 3.53914, Rho: 12.83283},
	{DepthKm: 5307.1129, Vp: 11.08474, Vs: 3.54378, Rho: 12.84205},
	{DepthKm: 5326.8145, Vp: 11.09125, Vs: 3.54833, Rho: 12.85109},
	{DepthKm: 5346.5161, Vp: 11.09764, Vs: 3.5528, Rho: 12.85996},
	{DepthKm: 5366.2177, Vp: 11.10391, Vs: 3.55718, Rho: 12.86867},
	{DepthKm: 5385.9194, Vp: 11.11005, Vs: 3.56147, Rho: 12.87721},
	{DepthKm: 5405.621, Vp: 11.11608, Vs: 3.56568, Rho: 12.88557},
	{DepthKm: 5425.3226, Vp: 11.12198, Vs: 3.56981, Rho: 12.89377},
	{DepthKm: 5445.0242, Vp: 11.12776, Vs: 3.57385, Rho: 12.9018},
	{DepthKm: 5464.7258, Vp: 11.13342, Vs: 3.5778, Rho: 12.90966},
	{DepthKm: 5484.4274, Vp: 11.13896, Vs: 3.58167, Rho: 12.91735},
	{DepthKm: 5504.129, Vp: 11.14438, Vs: 3.58546, Rho: 12.92487},
	{DepthKm: 5523.8306, Vp: 11.14967, Vs: 3.58916, Rho: 12.93223},
	{DepthKm: 5543.5323, Vp: 11.15485, Vs: 3.59278, Rho: 12.93941},
	{DepthKm: 5563.2339, Vp: 11.1599, Vs: 3.59631, Rho: 12.94643},
	{DepthKm: 5582.9355, Vp: 11.16483, Vs: 3.59975, Rho: 12.95327},
	{DepthKm: 5602.6371, Vp: 11.16963, Vs: 3.60311, Rho: 12.95995},
	{DepthKm: 5622.3387, Vp: 11.17432, Vs: 3.60639, Rho: 12.96646},
	{DepthKm: 5642.0403, Vp: 11.17889, Vs: 3.60958, Rho: 12.9728},
	{DepthKm: 5661.7419, Vp: 11.18333, Vs: 3.61268, Rho: 12.97897},
	{DepthKm: 5681.4435, Vp: 11.18765, Vs: 3.6157, Rho: 12.98497},
	{DepthKm: 5701.1452, Vp: 11.19185, Vs: 3.61863, Rho: 12.9908},
	{DepthKm: 5720.8468, Vp: 11.19593, Vs: 3.62148, Rho: 12.99646},
	{DepthKm: 5740.5484, Vp: 11.19988, Vs: 3.62425, Rho: 13.00195},
	{DepthKm: 5760.25, Vp: 11.20372, Vs: 3.62693, Rho: 13.00728},
	{DepthKm: 5779.9516, Vp: 11.20743, Vs: 3.62952, Rho: 13.01243},
	{DepthKm: 5799.6532, Vp: 11.21102, Vs: 3.63203, Rho: 13.01742},
	{DepthKm: 5819.3548, Vp: 11.21449, Vs: 3.63446, Rho: 13.02224},
	{DepthKm: 5839.0565, Vp: 11.21783, Vs: 3.63679, Rho: 13.02689},
	{DepthKm: 5858.7581, Vp: 11.22106, Vs: 3.63905, Rho: 13.03137},
	{DepthKm: 5878.4597, Vp: 11.22416, Vs: 3.64122, Rho: 13.03568},
	{DepthKm: 5898.1613, Vp: 11.22715, Vs: 3.6433, Rho: 13.03982},
	{DepthKm: 5917.8629, Vp: 11.23001, Vs: 3.6453, Rho: 13.04379},
	{DepthKm: 5937.5645, Vp: 11.23274, Vs: 3.64722, Rho: 13.04759},
	{DepthKm: 5957.2661, Vp: 11.23536, Vs: 3.64904, Rho: 13.05123},
	{DepthKm: 5976.9677, Vp: 11.23786, Vs: 3.65079, Rho: 13.05469},
	{DepthKm: 5996.6694, Vp: 11.24023, Vs: 3.65245, Rho: 13.05799},
	{DepthKm: 6016.371, Vp: 11.24248, Vs: 3.65402, Rho: 13.06112},
	{DepthKm: 6036.0726, Vp: 11.24461, Vs: 3.65551, Rho: 13.06407},
	{DepthKm: 6055.7742, Vp: 11.24662, Vs: 3.65691, Rho: 13.06686},
	{DepthKm: 6075.4758, Vp: 11.24851, Vs: 3.65823, Rho: 13.06948},
	{DepthKm: 6095.1774, Vp: 11.25027, Vs: 3.65946, Rho: 13.07193},
	{DepthKm: 6114.879, Vp: 11.25191, Vs: 3.66061, Rho: 13.07422},
	{DepthKm: 6134.5806, Vp: 11.25344, Vs: 3.66168, Rho: 13.07633},
	{DepthKm: 6154.2823, Vp: 11.25484, Vs: 3.66265, Rho: 13.07827},
	{DepthKm: 6173.9839, Vp: 11.25611, Vs: 3.66355, Rho: 13.08005},
	{DepthKm: 6193.6855, Vp: 11.25727, Vs: 3.66435, Rho: 13.08165},
	{DepthKm: 6213.3871, Vp: 11.25831, Vs: 3.66508, Rho: 13.08309},
	{DepthKm: 6233.0887, Vp: 11.25922, Vs: 3.66572, Rho: 13.08436},
	{DepthKm: 6252.7903, Vp: 11.26001, Vs: 3.66627, Rho: 13.08546},
	{DepthKm: 6272.4919, Vp: 11.26068, Vs: 3.66674, Rho: 13.08639},
	{DepthKm: 6292.1935, Vp: 11.26123, Vs: 3.66712, Rho: 13.08715},
	{DepthKm: 6311.8952, Vp: 11.26165, Vs: 3.66742, Rho: 13.08774},
	{DepthKm: 6331.5968, Vp: 11.26196, Vs: 3.66763, Rho: 13.08816},
	{DepthKm: 6351.2984, Vp: 11.26214, Vs: 3.66776, Rho: 13.08842},
	{DepthKm: 6371.0, Vp: 11.2622, Vs: 3.6678, Rho: 13.0885},
}

var (
	premOnce  sync.Once
	premModel *LayeredModel
)

// PREM returns the shared built-in PREM instance.
func PREM() *LayeredModel {
	premOnce.Do(func() {
		m, err := NewLayeredModel("prem", premNodes)
		if err != nil {
			panic("velmodel: bad built-in prem table: " + err.Error())
		}
		premModel = m
	})
	return premModel
}
